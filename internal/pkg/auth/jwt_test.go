package auth

import (
	"testing"
	"time"

	"github.com/sneakhaus/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtConfig(secret string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-test"},
		JWT: config.JWTConfig{
			Secret:            secret,
			AccessTokenExpiry: time.Hour,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager(jwtConfig("test-secret-that-is-long-enough-123"))

	token, err := mgr.GenerateToken("jordan@example.com", "session-1")
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", claims.Email)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(jwtConfig("first-secret-that-is-long-enough-12")).
		GenerateToken("jordan@example.com", "session-1")
	require.NoError(t, err)

	_, err = NewJWTManager(jwtConfig("other-secret-that-is-long-enough-12")).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := jwtConfig("test-secret-that-is-long-enough-123")
	cfg.JWT.AccessTokenExpiry = -time.Minute

	token, err := NewJWTManager(cfg).GenerateToken("jordan@example.com", "session-1")
	require.NoError(t, err)

	_, err = NewJWTManager(cfg).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestPasswordHashAndVerify(t *testing.T) {
	mgr := NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
	})

	hash, err := mgr.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.NoError(t, mgr.VerifyPassword("hunter2hunter2", hash))
	assert.Error(t, mgr.VerifyPassword("wrong-password", hash))
}

func TestPasswordLengthBounds(t *testing.T) {
	mgr := NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
	})

	_, err := mgr.HashPassword("short")
	assert.Error(t, err)

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	_, err = mgr.HashPassword(string(long))
	assert.Error(t, err)
}
