package utils

import (
	"testing"
	"time"

	"github.com/popsorte/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateJWT("user-1", "admin", cfg)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "admin", testConfig())
	require.NoError(t, err)

	other := &config.Config{JWT: config.JWTConfig{Secret: "different", ExpiresIn: 3600}}
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(12)
	require.NoError(t, err)
	assert.Len(t, a, 12)

	b, err := GenerateRandomString(12)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
