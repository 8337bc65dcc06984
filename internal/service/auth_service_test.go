package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/crm-service/internal/auth"
	"github.com/spec-kit/crm-service/internal/config"
	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
)

// fakeUserRepository is an in-memory stand-in for the Postgres repository.
type fakeUserRepository struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepository) Create(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	f.byEmail[user.Email] = &clone
	return nil
}

func (f *fakeUserRepository) Update(_ context.Context, user *domain.User) error {
	for email, existing := range f.byEmail {
		if existing.ID == user.ID {
			delete(f.byEmail, email)
			clone := *user
			f.byEmail[user.Email] = &clone
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeUserRepository) Delete(_ context.Context, id string) error {
	for email, existing := range f.byEmail {
		if existing.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, existing := range f.byEmail {
		if existing.ID == id {
			clone := *existing
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	existing, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *existing
	return &clone, nil
}

func (f *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepository) List(_ context.Context, _ repository.UserFilter) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.byEmail))
	for _, existing := range f.byEmail {
		users = append(users, *existing)
	}
	return users, nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			RefreshTokenTTLDays:   7,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepository) {
	t.Helper()
	repo := newFakeUserRepository()
	return NewAuthService(testConfig(), repo), repo
}

func registerUser(t *testing.T, svc *AuthService, email, role string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), "Test Person", email, "hunter2!", role)
	require.NoError(t, err)
	return user
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "Eve", "eve@example.com", "pw", "ROOT")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerUser(t, svc, "dup@example.com", "USER")

	_, err := svc.Register(context.Background(), "Dup", "dup@example.com", "pw", "USER")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesValidTokenPair(t *testing.T) {
	svc, _ := newTestAuthService(t)
	user := registerUser(t, svc, "rep@example.com", "SALES")

	pair, profile, err := svc.Login(context.Background(), "rep@example.com", "hunter2!")
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotNil(t, profile)

	assert.Equal(t, domain.RoleSales, profile.Role)
	assert.Equal(t, "rep@example.com", profile.Email)

	claims, err := svc.TokenManager().ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "SALES", claims.Role)

	refreshClaims, err := svc.TokenManager().ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, refreshClaims.Role)
}

func TestLoginTwiceYieldsDistinctTokens(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerUser(t, svc, "rep@example.com", "SALES")

	first, _, err := svc.Login(context.Background(), "rep@example.com", "hunter2!")
	require.NoError(t, err)
	second, _, err := svc.Login(context.Background(), "rep@example.com", "hunter2!")
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = svc.TokenManager().ParseToken(first.AccessToken)
	assert.NoError(t, err)
	_, err = svc.TokenManager().ParseToken(second.AccessToken)
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	registerUser(t, svc, "rep@example.com", "SALES")

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "hunter2!")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, _, wrongErr := svc.Login(context.Background(), "rep@example.com", "not-the-password")
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRefreshCarriesCurrentRole(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := registerUser(t, svc, "rep@example.com", "SALES")

	pair, _, err := svc.Login(context.Background(), "rep@example.com", "hunter2!")
	require.NoError(t, err)

	user.Role = domain.RoleManager
	require.NoError(t, repo.Update(context.Background(), user))

	accessToken, _, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.TokenManager().ParseToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "MANAGER", claims.Role)
}

func TestRefreshWithDeletedUser(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := registerUser(t, svc, "rep@example.com", "SALES")

	pair, _, err := svc.Login(context.Background(), "rep@example.com", "hunter2!")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), user.ID))

	_, _, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrUnknownPrincipal)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _, err := svc.Refresh(context.Background(), "definitely-not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrTokenMalformed)
}

func TestCurrentUserUnknownPrincipal(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CurrentUser(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUnknownPrincipal)
}
