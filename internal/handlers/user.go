package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/middleware"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// UserHandler serves profile records: the public cast listing, the
// authenticated self-service endpoints, and the admin-only roster
// management.
type UserHandler struct {
	profileService ProfileServiceInterface
	galleryService *services.GalleryService
}

func NewUserHandler(profileService ProfileServiceInterface, galleryService *services.GalleryService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		galleryService: galleryService,
	}
}

func userResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Years:     u.Years,
		Bio:       u.Bio,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ListCast is the public roster: cast-role profiles only.
func (h *UserHandler) ListCast(c *drift.Context) {
	users, err := h.profileService.List(context.Background(), models.RoleCast)
	if err != nil {
		c.InternalServerError("failed to list cast members")
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i := range users {
		response[i] = userResponse(&users[i])
	}

	_ = c.JSON(200, response)
}

func (h *UserHandler) GetCastMember(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid cast member id")
		return
	}

	user, err := h.profileService.GetByID(context.Background(), id)
	if err != nil {
		c.NotFound("cast member not found")
		return
	}

	_ = c.JSON(200, userResponse(user))
}

// List is the admin view of every profile, optionally filtered by the
// role query parameter.
func (h *UserHandler) List(c *drift.Context) {
	role := c.QueryParam("role")
	if role != "" && role != models.RoleAdmin && role != models.RoleCast {
		c.BadRequest("invalid role filter")
		return
	}

	users, err := h.profileService.List(context.Background(), role)
	if err != nil {
		c.InternalServerError("failed to list users")
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i := range users {
		response[i] = userResponse(&users[i])
	}

	_ = c.JSON(200, response)
}

func (h *UserHandler) Create(c *drift.Context) {
	var req dto.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" {
		c.BadRequest("email is required")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	ctx := context.Background()

	id, err := h.profileService.Create(ctx, models.User{
		Email: req.Email,
		Name:  req.Name,
		Years: req.Years,
		Bio:   req.Bio,
	})
	if err != nil {
		c.InternalServerError("failed to create user")
		return
	}

	user, err := h.profileService.GetByID(ctx, id)
	if err != nil {
		c.InternalServerError("failed to load created user")
		return
	}

	_ = c.JSON(201, userResponse(user))
}

func (h *UserHandler) Update(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	fields := map[string]any{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Years != nil {
		fields["years"] = *req.Years
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	ctx := context.Background()

	if err := h.profileService.Update(ctx, id, fields); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.NotFound("user not found")
			return
		}
		c.InternalServerError("failed to update user")
		return
	}

	user, err := h.profileService.GetByID(ctx, id)
	if err != nil {
		c.NotFound("user not found")
		return
	}

	_ = c.JSON(200, userResponse(user))
}

func (h *UserHandler) SetRole(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	var req dto.SetRoleRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := context.Background()

	if err := h.profileService.SetRole(ctx, id, req.Role); err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			c.BadRequest("role must be admin or cast")
			return
		}
		c.InternalServerError("failed to set role")
		return
	}

	user, err := h.profileService.GetByID(ctx, id)
	if err != nil {
		c.NotFound("user not found")
		return
	}

	_ = c.JSON(200, userResponse(user))
}

// Delete removes a profile and its linked cast photo records. Deleting
// an already-deleted profile succeeds.
func (h *UserHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	ctx := context.Background()

	if err := h.galleryService.DeleteCastPhotosForMember(ctx, id, ""); err != nil {
		c.InternalServerError("failed to delete cast photos")
		return
	}

	if err := h.profileService.Delete(ctx, id); err != nil {
		c.InternalServerError("failed to delete user")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "user deleted"})
}

// GetMe resolves the caller's profile by the email on the access
// token.
func (h *UserHandler) GetMe(c *drift.Context) {
	email := middleware.GetEmail(c)
	if email == "" {
		c.Unauthorized("not authenticated")
		return
	}

	user, err := h.profileService.ResolveByEmail(context.Background(), email)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.NotFound("profile not found")
			return
		}
		c.InternalServerError("failed to resolve profile")
		return
	}

	_ = c.JSON(200, userResponse(user))
}

// UpdateMe lets a signed-in member edit their own profile fields.
// Email and role are not self-serviceable.
func (h *UserHandler) UpdateMe(c *drift.Context) {
	email := middleware.GetEmail(c)
	if email == "" {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := context.Background()

	user, err := h.profileService.ResolveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.NotFound("profile not found")
			return
		}
		c.InternalServerError("failed to resolve profile")
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Years != nil {
		fields["years"] = *req.Years
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	if err := h.profileService.Update(ctx, user.ID, fields); err != nil {
		c.InternalServerError("failed to update profile")
		return
	}

	updated, err := h.profileService.GetByID(ctx, user.ID)
	if err != nil {
		c.InternalServerError("failed to load profile")
		return
	}

	_ = c.JSON(200, userResponse(updated))
}
