package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Integration_RegisterAndAuthenticate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewIdentityService(tdb.DB)
	ctx := context.Background()

	identity, err := svc.Register(ctx, "signup@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "signup@example.com", identity.Email)
	// Stored hash never matches the raw password.
	assert.NotEqual(t, "password123", identity.PasswordHash)

	authed, err := svc.Authenticate(ctx, "signup@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "signup@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestIdentityService_Integration_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewIdentityService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@example.com", "password456")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestTokenService_Integration_RefreshTokenLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	identities := services.NewIdentityService(tdb.DB)
	tokens := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	identity, err := identities.Register(ctx, "session@example.com", "password123")
	require.NoError(t, err)

	hash := services.HashToken("refresh-token-value")
	require.NoError(t, tokens.StoreRefreshToken(ctx, identity.ID, hash, time.Now().Add(time.Hour)))

	got, err := tokens.ValidateRefreshToken(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got)

	require.NoError(t, tokens.RevokeRefreshToken(ctx, hash))

	_, err = tokens.ValidateRefreshToken(ctx, hash)
	assert.ErrorIs(t, err, services.ErrTokenNotFound)
}

func TestTokenService_Integration_ExpiredTokenRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	identities := services.NewIdentityService(tdb.DB)
	tokens := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	identity, err := identities.Register(ctx, "expired@example.com", "password123")
	require.NoError(t, err)

	hash := services.HashToken("stale-token")
	require.NoError(t, tokens.StoreRefreshToken(ctx, identity.ID, hash, time.Now().Add(-time.Minute)))

	_, err = tokens.ValidateRefreshToken(ctx, hash)
	assert.ErrorIs(t, err, services.ErrTokenNotFound)

	require.NoError(t, tokens.CleanupExpired(ctx))
}
