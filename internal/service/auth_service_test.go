package service

import (
	"context"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-0123456789abcdef"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(users, cfg), users
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	svc, users := newAuthService()

	user, token, err := svc.Register(context.Background(), "Alice@Example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)

	assert.Equal(t, "alice@example.com", user.Email, "emails are stored lowercased")
	assert.False(t, user.ProfileCompleted)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	assert.Len(t, users.users, 1)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	_, _, err := svc.Register(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	// Same address in a different case is still a duplicate.
	_, _, err = svc.Register(context.Background(), "ALICE@example.com", "another-pass")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _ := newAuthService()

	registered, _, err := svc.Register(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	// Unknown accounts fail with the same error as a bad password.
	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	svc, _ := newAuthService()

	registered, _, err := svc.Register(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	user, err := svc.GetUser(context.Background(), registered.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, registered.Email, user.Email)

	_, err = svc.GetUser(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, util.ErrInvalidID)

	_, err = svc.GetUser(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
