package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Admin@2025")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Admin@2025", hash)

	assert.NoError(t, VerifyPassword(hash, "Admin@2025"))
	assert.Error(t, VerifyPassword(hash, "Admin@2026"))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("Admin@2025")
	require.NoError(t, err)
	b, err := HashPassword("Admin@2025")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
