package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/crm-service/internal/auth"
	"github.com/spec-kit/crm-service/internal/config"
	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// login failures so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnknownPrincipal is returned when a valid token names a user that
	// no longer exists in the store.
	ErrUnknownPrincipal = errors.New("principal no longer exists")
)

// AuthService coordinates credential verification and token issuance.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new user account. The requested role must be one of
// the closed enum values.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, role string) (*domain.User, error) {
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and mints an access+refresh token pair plus a
// profile summary. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, *domain.Profile, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokenMgr.GenerateAccessToken(user)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, _, err := s.tokenMgr.GenerateRefreshToken(user)
	if err != nil {
		return nil, nil, err
	}

	pair := &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}
	profile := &domain.Profile{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
	return pair, profile, nil
}

// Refresh validates a refresh token and mints a new access token. The user
// is re-read from the store so the new token carries the current role, not
// the one in force at login time.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.tokenMgr.ParseToken(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}

	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, ErrUnknownPrincipal
		}
		return "", time.Time{}, err
	}

	return s.tokenMgr.GenerateAccessToken(user)
}

// CurrentUser resolves the authenticated caller's full record.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownPrincipal
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
