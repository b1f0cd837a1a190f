package user

import (
	"context"
	"testing"
	"time"

	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Store:    config.StoreConfig{SessionTTL: time.Hour},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
}

func newTestService() *Service {
	return NewService(store.NewMemory(), testConfig(), events.NewBus())
}

func registerReq() *RegisterRequest {
	return &RegisterRequest{
		Email:     "jordan@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jordan",
		LastName:  "Baker",
	}
}

func TestRegisterSignsSessionIn(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	account, err := svc.Register(ctx, "session-1", registerReq())
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", account.Email)
	assert.NotEqual(t, "hunter2hunter2", account.PasswordHash)

	current, err := svc.Current(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "jordan@example.com", current.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "session-1", registerReq())
	require.NoError(t, err)

	// Emails are normalized before the uniqueness check
	req := registerReq()
	req.Email = "Jordan@Example.COM"
	_, err = svc.Register(ctx, "session-2", req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newTestService()

	req := registerReq()
	req.Password = "short"
	_, err := svc.Register(context.Background(), "session-1", req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "session-1", registerReq())
	require.NoError(t, err)

	account, err := svc.Login(ctx, "session-2", &LoginRequest{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jordan", account.FirstName)

	current, err := svc.Current(ctx, "session-2")
	require.NoError(t, err)
	require.NotNil(t, current)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "session-1", registerReq())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "session-2", &LoginRequest{
		Email:    "jordan@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "session-1", &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	// Same error as a wrong password, so callers cannot probe for accounts
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "session-1", registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "session-1"))

	current, err := svc.Current(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrentAnonymousSession(t *testing.T) {
	svc := newTestService()

	current, err := svc.Current(context.Background(), "session-never-seen")
	require.NoError(t, err)
	assert.Nil(t, current)
}
