package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParse(t *testing.T) {
	token, err := Generate("secret", "admin", "Admin", "test", 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, role, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "Admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secret", "admin", "Admin", "test", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secret", "admin", "Admin", "test", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "admin", "Admin", "test", 5)
	assert.Error(t, err)
}
