// internal/pkg/auth/password_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coquette-threads/storefront-backend/internal/config"
)

func testPasswordManager() *PasswordManager {
	cfg := testConfig()
	cfg.Security = config.SecurityConfig{BcryptCost: 4} // minimum cost keeps tests fast
	return NewPasswordManager(cfg)
}

func TestHashAndVerifyPassword(t *testing.T) {
	pm := testPasswordManager()

	hash, err := pm.HashPassword("gownlover99")
	require.NoError(t, err)
	assert.NotEqual(t, "gownlover99", hash)

	assert.NoError(t, pm.VerifyPassword("gownlover99", hash))
	assert.Error(t, pm.VerifyPassword("wrongpassword", hash))
}

func TestValidatePassword(t *testing.T) {
	pm := testPasswordManager()

	assert.Error(t, pm.ValidatePassword("short"))
	assert.Error(t, pm.ValidatePassword(strings.Repeat("x", 73)))
	assert.NoError(t, pm.ValidatePassword("exactly8"))
	assert.NoError(t, pm.ValidatePassword(strings.Repeat("x", 72)))
}

func TestHashPasswordRejectsWeakPassword(t *testing.T) {
	pm := testPasswordManager()

	_, err := pm.HashPassword("2short")
	assert.Error(t, err)
}
