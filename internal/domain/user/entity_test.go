// internal/domain/user/entity_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAdminAccess(t *testing.T) {
	assert.False(t, (&User{Role: RoleUser}).HasAdminAccess())
	assert.True(t, (&User{Role: RoleAdmin}).HasAdminAccess())

	// Legacy records carry the flag instead of the role
	assert.True(t, (&User{Role: RoleUser, IsAdmin: true}).HasAdminAccess())
}

func TestBeforeCreateNormalizesEmail(t *testing.T) {
	u := &User{Email: "Amara@Example.COM"}

	require.NoError(t, u.BeforeCreate(nil))
	assert.Equal(t, "amara@example.com", u.Email)
}
