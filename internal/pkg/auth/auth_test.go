// internal/pkg/auth/auth_test.go
package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockmaster-backend/internal/pkg/auth"
	"github.com/your-org/stockmaster-backend/internal/testutil"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	jwtManager := auth.NewJWTManager(testutil.NewTestConfig())

	token, err := jwtManager.GenerateAccessToken(7, "ops@example.com", true)
	require.NoError(t, err)

	claims, err := jwtManager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	jwtManager := auth.NewJWTManager(testutil.NewTestConfig())

	refresh, err := jwtManager.GenerateRefreshToken(7, "ops@example.com")
	require.NoError(t, err)

	_, err = jwtManager.ValidateAccessToken(refresh)
	assert.Error(t, err)

	claims, err := jwtManager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	jwtManager := auth.NewJWTManager(testutil.NewTestConfig())

	_, err := jwtManager.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", auth.ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "abc123", auth.ExtractTokenFromHeader("bearer abc123"))
	assert.Equal(t, "", auth.ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", auth.ExtractTokenFromHeader(""))
	assert.Equal(t, "", auth.ExtractTokenFromHeader("Basic abc123"))
}

func TestPasswordHashAndVerify(t *testing.T) {
	passwords := auth.NewPasswordManager(testutil.NewTestConfig())

	hash, err := passwords.HashPassword("sturdy-pass-1")
	require.NoError(t, err)
	assert.NotEqual(t, "sturdy-pass-1", hash)

	assert.NoError(t, passwords.VerifyPassword("sturdy-pass-1", hash))
	assert.Error(t, passwords.VerifyPassword("wrong-pass-1", hash))
}

func TestPasswordValidation(t *testing.T) {
	passwords := auth.NewPasswordManager(testutil.NewTestConfig())

	assert.Error(t, passwords.ValidatePassword("short1"))
	assert.Error(t, passwords.ValidatePassword("lettersonly"))
	assert.Error(t, passwords.ValidatePassword("12345678"))
	assert.NoError(t, passwords.ValidatePassword("letters123"))
}
