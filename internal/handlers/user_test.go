package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/middleware"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/jmuir/stagedoor-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserApp(profiles *testutil.MockProfileService) (http.Handler, *services.JWTService) {
	galleryStore := new(testutil.MockStore)
	handler := NewUserHandler(profiles, services.NewGalleryService(galleryStore))
	jwtSvc := testutil.TestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/cast", handler.ListCast)
	app.Get("/cast/:id", handler.GetCastMember)

	protected := app.Group("")
	protected.Use(middleware.Auth(jwtSvc))
	protected.Get("/users/me", handler.GetMe)
	protected.Patch("/users/me", handler.UpdateMe)

	admin := app.Group("/admin")
	admin.Use(middleware.Auth(jwtSvc))
	admin.Patch("/users/:id/role", handler.SetRole)

	return app, jwtSvc
}

func TestUserHandler_ListCast_Public(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)

	profiles.On("List", mock.Anything, models.RoleCast).Return([]models.User{
		{ID: uuid.New(), Email: "a@example.com", Name: "A", Role: models.RoleCast},
		{ID: uuid.New(), Email: "b@example.com", Name: "B", Role: models.RoleCast},
	}, nil)

	client := testutil.NewHTTPTestClient(t, app)
	rec := client.GET("/cast", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	profiles.AssertExpectations(t)
}

func TestUserHandler_GetCastMember_NotFound(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)
	id := uuid.New()

	profiles.On("GetByID", mock.Anything, id).Return(nil, services.ErrProfileNotFound)

	client := testutil.NewHTTPTestClient(t, app)
	rec := client.GET("/cast/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_GetCastMember_InvalidID(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)

	client := testutil.NewHTTPTestClient(t, app)
	rec := client.GET("/cast/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetMe_Success(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)

	identityID := uuid.New()
	user := &models.User{
		ID:    uuid.New(),
		Email: "cast@example.com",
		Name:  "Cast Member",
		Role:  models.RoleCast,
	}

	profiles.On("ResolveByEmail", mock.Anything, "cast@example.com").Return(user, nil)

	token := testutil.GenerateTestToken(t, identityID, "cast@example.com", false)
	client := testutil.NewHTTPTestClient(t, app)
	rec := client.GET("/users/me", map[string]string{"Authorization": testutil.AuthHeader(token)})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "Cast Member", resp.Name)
}

func TestUserHandler_GetMe_Unauthenticated(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)

	client := testutil.NewHTTPTestClient(t, app)
	rec := client.GET("/users/me", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdateMe_CannotTouchRole(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)

	userID := uuid.New()
	user := &models.User{ID: userID, Email: "cast@example.com", Role: models.RoleCast}

	profiles.On("ResolveByEmail", mock.Anything, "cast@example.com").Return(user, nil)
	profiles.On("Update", mock.Anything, userID, map[string]any{"name": "Renamed"}).Return(nil)
	profiles.On("GetByID", mock.Anything, userID).Return(user, nil)

	name := "Renamed"
	token := testutil.GenerateTestToken(t, uuid.New(), "cast@example.com", false)
	client := testutil.NewHTTPTestClient(t, app)
	rec := client.PATCH("/users/me", dto.UpdateUserRequest{Name: &name},
		map[string]string{"Authorization": testutil.AuthHeader(token)})

	assert.Equal(t, http.StatusOK, rec.Code)
	profiles.AssertExpectations(t)
}

func TestUserHandler_SetRole_InvalidRole(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)
	id := uuid.New()

	profiles.On("SetRole", mock.Anything, id, "producer").Return(services.ErrInvalidRole)

	token := testutil.GenerateTestToken(t, uuid.New(), "boss@example.com", true)
	client := testutil.NewHTTPTestClient(t, app)
	rec := client.PATCH("/admin/users/"+id.String()+"/role", dto.SetRoleRequest{Role: "producer"},
		map[string]string{"Authorization": testutil.AuthHeader(token)})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_SetRole_Success(t *testing.T) {
	profiles := new(testutil.MockProfileService)
	app, _ := setupUserApp(profiles)
	id := uuid.New()

	profiles.On("SetRole", mock.Anything, id, models.RoleAdmin).Return(nil)
	profiles.On("GetByID", mock.Anything, id).Return(&models.User{
		ID:    id,
		Email: "promoted@example.com",
		Role:  models.RoleAdmin,
	}, nil)

	token := testutil.GenerateTestToken(t, uuid.New(), "boss@example.com", true)
	client := testutil.NewHTTPTestClient(t, app)
	rec := client.PATCH("/admin/users/"+id.String()+"/role", dto.SetRoleRequest{Role: models.RoleAdmin},
		map[string]string{"Authorization": testutil.AuthHeader(token)})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleAdmin, resp.Role)
}
