package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"folio-be/internal/models"
	"folio-be/internal/session"
)

func newAuthFixture() (AuthService, *fakeUserRepo, session.Store) {
	userRepo := newFakeUserRepo()
	sessions := session.NewMemoryStore()
	return NewAuthService(userRepo, sessions, time.Hour), userRepo, sessions
}

func register(t *testing.T, svc AuthService, username, email, password string) {
	t.Helper()
	_, err := svc.Register(&models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, err := svc.Register(&models.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "alice", "alice@x.com", "secret1")

	_, err := svc.Register(&models.RegisterRequest{
		Username: "alice",
		Email:    "other@x.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "alice", "alice@x.com", "secret1")

	_, err := svc.Register(&models.RegisterRequest{
		Username: "bob",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginEstablishesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	register(t, svc, "alice", "alice@x.com", "secret1")

	ctx := context.Background()
	user, token, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionUserID, err := sessions.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sessionUserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "alice", "alice@x.com", "secret1")

	ctx := context.Background()

	_, _, wrongPassword := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "wrong"})
	_, _, unknownUser := svc.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogoutDestroysSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	register(t, svc, "alice", "alice@x.com", "secret1")

	ctx := context.Background()
	_, token, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = sessions.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Logout is idempotent
	assert.NoError(t, svc.Logout(ctx, token))
	assert.NoError(t, svc.Logout(ctx, ""))
}
