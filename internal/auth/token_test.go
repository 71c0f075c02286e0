package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/laundry-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-123",
		Username: "admin",
		Role:     domain.RoleSuperAdmin,
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	token, expiresAt, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", expiresAt)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("user id mismatch: got %q", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Fatalf("username mismatch: got %q", claims.Username)
	}
	if claims.Role != domain.RoleSuperAdmin {
		t.Fatalf("role mismatch: got %q", claims.Role)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	tm.ttl = -1 * time.Second

	token, _, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = tm.Verify(token)
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(token)
	if err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := tm.Verify(tampered); err == nil {
		t.Fatalf("expected error for tampered token, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	if _, err := tm.Verify("not.a.jwt"); err != ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
