package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "order-catalog/pkg/errors"
)

const testSecret = "test-secret"

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.False(t, claims.IsRefreshToken)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, -time.Minute, 24*time.Hour)

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	signer := NewJWTService(testSecret, time.Hour, 24*time.Hour)
	verifier := NewJWTService("another-secret", time.Hour, 24*time.Hour)

	access, _, err := signer.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, 24*time.Hour)
	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
