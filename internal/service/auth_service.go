package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/laundry-service/internal/auth"
	"github.com/spec-kit/laundry-service/internal/config"
	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/repository"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// AuthService coordinates the login flow.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	throttle LoginThrottle
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Throttle LoginThrottle
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	throttle := deps.Throttle
	if throttle == nil {
		throttle = NewNoopThrottle()
	}
	return &AuthService{
		users:    deps.UserRepo,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		throttle: throttle,
	}
}

// Login authenticates a user and issues a session token. Unknown usernames
// and wrong passwords produce the same error so the response does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	if !s.throttle.Allow(ctx, username) {
		return nil, "", time.Time{}, apperrors.NewDomainError(
			"TOO_MANY_ATTEMPTS", "too many failed login attempts, try again later",
			http.StatusTooManyRequests, nil)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.throttle.RecordFailure(ctx, username)
			return nil, "", time.Time{}, apperrors.NewAuthenticationFailed("invalid username or password")
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.throttle.RecordFailure(ctx, username)
		return nil, "", time.Time{}, apperrors.NewAuthenticationFailed("invalid username or password")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.throttle.Reset(ctx, username)
	return user, token, expiresAt, nil
}

// Logout is a no-op server side: sessions are stateless JWTs, so logout only
// removes the client's cookie. An outstanding token stays valid until expiry.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
