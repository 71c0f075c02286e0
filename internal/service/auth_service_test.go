package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/laundry-service/internal/auth"
	"github.com/spec-kit/laundry-service/internal/config"
	"github.com/spec-kit/laundry-service/internal/domain"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func (r *fakeUserRepo) Create(context.Context, *domain.User) error { return errors.New("not implemented") }
func (r *fakeUserRepo) Update(context.Context, *domain.User) error { return errors.New("not implemented") }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

type fakeThrottle struct {
	allowed  bool
	failures int
	resets   int
}

func (t *fakeThrottle) Allow(context.Context, string) bool    { return t.allowed }
func (t *fakeThrottle) RecordFailure(context.Context, string) { t.failures++ }
func (t *fakeThrottle) Reset(context.Context, string)         { t.resets++ }

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			SessionTTLHours: 24,
			BcryptCost:      bcrypt.MinCost,
		},
	}
}

func storedUser(t *testing.T, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "u-1",
		Username:     username,
		Name:         "Admin",
		PasswordHash: hash,
		Role:         role,
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: map[string]*domain.User{
		"admin": storedUser(t, "admin", "correct-horse", domain.RoleSuperAdmin),
	}}
	throttle := &fakeThrottle{allowed: true}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo, Throttle: throttle})

	user, token, expiresAt, err := svc.Login(context.Background(), "admin", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, user.Role)
	assert.False(t, expiresAt.IsZero())
	assert.Equal(t, 1, throttle.resets)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Role, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: map[string]*domain.User{
		"admin": storedUser(t, "admin", "correct-horse", domain.RoleSuperAdmin),
	}}
	throttle := &fakeThrottle{allowed: true}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo, Throttle: throttle})

	_, _, _, err := svc.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "AUTHENTICATION_FAILED", domainErr.Code)
	assert.Equal(t, 1, throttle.failures)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo, Throttle: &fakeThrottle{allowed: true}})

	_, _, _, err := svc.Login(context.Background(), "ghost", "whatever")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "AUTHENTICATION_FAILED", domainErr.Code)
	assert.Equal(t, "invalid username or password", domainErr.Message)
}

func TestLogin_Throttled(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{users: map[string]*domain.User{
		"admin": storedUser(t, "admin", "correct-horse", domain.RoleSuperAdmin),
	}}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo, Throttle: &fakeThrottle{allowed: false}})

	_, _, _, err := svc.Login(context.Background(), "admin", "correct-horse")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOO_MANY_ATTEMPTS", domainErr.Code)
}

func TestLogin_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{err: errors.New("connection refused")}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo, Throttle: &fakeThrottle{allowed: true}})

	_, _, _, err := svc.Login(context.Background(), "admin", "pw")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
}
