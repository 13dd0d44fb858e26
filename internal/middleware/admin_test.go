package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver returns a fixed profile or error for any email.
type stubResolver struct {
	profile *models.User
	err     error
	calls   int
}

func (s *stubResolver) ResolveByEmail(ctx context.Context, email string) (*models.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func adminGateRequest(t *testing.T, resolver ProfileResolver, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	jwtSvc := newTestJWTService()

	pair, err := jwtSvc.GenerateTokenPair(uuid.New(), "someone@example.com", admin)
	require.NoError(t, err)

	app := drift.New()
	app.Use(Auth(jwtSvc))
	app.Use(AdminRequired(resolver))
	app.Get("/admin-only", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestAdminRequired_ClaimGrantsAccess(t *testing.T) {
	resolver := &stubResolver{}

	rec := adminGateRequest(t, resolver, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The claim short-circuits; no profile lookup happens.
	assert.Zero(t, resolver.calls)
}

func TestAdminRequired_StoredAdminRoleGrantsAccess(t *testing.T) {
	resolver := &stubResolver{profile: &models.User{Role: models.RoleAdmin}}

	rec := adminGateRequest(t, resolver, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, resolver.calls)
}

func TestAdminRequired_CastRoleDenied(t *testing.T) {
	resolver := &stubResolver{profile: &models.User{Role: models.RoleCast}}

	rec := adminGateRequest(t, resolver, false)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRequired_MissingProfileDenied(t *testing.T) {
	resolver := &stubResolver{err: services.ErrProfileNotFound}

	rec := adminGateRequest(t, resolver, false)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRequired_ResolutionFailureFailsClosed(t *testing.T) {
	resolver := &stubResolver{err: assert.AnError}

	rec := adminGateRequest(t, resolver, false)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRequired_CheckedOnEveryRequest(t *testing.T) {
	resolver := &stubResolver{profile: &models.User{Role: models.RoleAdmin}}
	jwtSvc := newTestJWTService()

	pair, err := jwtSvc.GenerateTokenPair(uuid.New(), "boss@example.com", false)
	require.NoError(t, err)

	app := drift.New()
	app.Use(Auth(jwtSvc))
	app.Use(AdminRequired(resolver))
	app.Get("/admin-only", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 3, resolver.calls)
}
