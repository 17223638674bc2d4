package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universe_backend/internals/configs"
)

func TestGenerateAndParseJWT(t *testing.T) {
	configs.JWTSecret = "test-secret"

	token, err := GenerateJWT("7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f", "student", "andi")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "7e6a2f1c-0f1d-4b62-9c2d-1a2b3c4d5e6f", claims.Subject)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "andi", claims.UserName)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = old }()

	_, err := GenerateJWT("id", "student", "andi")
	assert.Error(t, err)
}

func TestParseJWTRejectsTampering(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := GenerateJWT("id", "student", "andi")
	require.NoError(t, err)

	configs.JWTSecret = "other-secret"
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
