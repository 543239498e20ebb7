package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortlyhq/shortly-backend/internal/auth"
	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository, *auth.TokenManager) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	tokens := auth.NewTokenManager("test-secret")
	return NewAuthService(users, tokens, testLogger()), users, tokens
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	token, user, err := svc.Register(context.Background(), "a@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password, "password must be stored hashed")

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "dup@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "dup@example.com", "secret2")
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, registered, err := svc.Register(context.Background(), "b@example.com", "secret1")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "b@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "c@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "c@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(users, auth.NewTokenManager("test-secret"), testLogger())
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, "gone@example.com", "secret1")
	require.NoError(t, err)

	// Soft-delete the account; gorm's deleted-at scope hides it from the
	// login lookup.
	require.NoError(t, db.Delete(&models.User{}, "id = ?", registered.ID).Error)

	_, _, err = svc.Login(ctx, "gone@example.com", "secret1")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestResolveRejectsMissingUser(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	token, err := tokens.Generate("ghost-id", "ghost@example.com")
	require.NoError(t, err)
	claims, err := tokens.Validate(token)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), claims)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestResolveReturnsIdentity(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	_, user, err := svc.Register(context.Background(), "id@example.com", "secret1")
	require.NoError(t, err)

	token, err := tokens.Generate(user.ID, user.Email)
	require.NoError(t, err)
	claims, err := tokens.Validate(token)
	require.NoError(t, err)

	identity, err := svc.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Email, identity.Email)
	assert.False(t, identity.Anonymous())
}
