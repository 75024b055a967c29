package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("507f1f77bcf86cd799439011", PurposeLogin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, PurposeLogin, claims.Purpose)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("507f1f77bcf86cd799439011", PurposeLogin, -time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenCarriesPurpose(t *testing.T) {
	token, err := GenerateToken("507f1f77bcf86cd799439011", PurposeResetPassword, 15*time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, PurposeResetPassword, claims.Purpose)
}
