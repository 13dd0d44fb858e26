package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWTService {
	return NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWT()
	identityID := uuid.New()

	pair, err := svc.GenerateTokenPair(identityID, "cast@example.com", false)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), pair.ExpiresIn)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identityID, claims.IdentityID)
	assert.Equal(t, "cast@example.com", claims.Email)
	assert.False(t, claims.Admin)
}

func TestJWTService_AdminClaimRoundTrip(t *testing.T) {
	svc := newTestJWT()

	pair, err := svc.GenerateTokenPair(uuid.New(), "boss@example.com", true)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestJWTService_RefreshTokensAreDifferent(t *testing.T) {
	svc := newTestJWT()
	identityID := uuid.New()

	first, err := svc.GenerateTokenPair(identityID, "cast@example.com", false)
	require.NoError(t, err)
	second, err := svc.GenerateTokenPair(identityID, "cast@example.com", false)
	require.NoError(t, err)

	// Refresh tokens carry a unique id so two sessions never share one.
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	svc := newTestJWT()
	identityID := uuid.New()

	pair, err := svc.GenerateTokenPair(identityID, "cast@example.com", false)
	require.NoError(t, err)

	got, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, identityID, got)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := newTestJWT()
	other := NewJWTService("different-secret", 15*time.Minute, 24*time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "cast@example.com", false)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, 24*time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "cast@example.com", false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
