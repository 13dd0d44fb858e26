package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/middleware"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// PhotoHandler serves headshot uploads. Files arrive as multipart
// form data under the "photo" field.
type PhotoHandler struct {
	photoService   *services.PhotoService
	profileService ProfileServiceInterface
}

func NewPhotoHandler(photoService *services.PhotoService, profileService ProfileServiceInterface) *PhotoHandler {
	return &PhotoHandler{
		photoService:   photoService,
		profileService: profileService,
	}
}

// Upload replaces the headshot of the cast member named in the path.
func (h *PhotoHandler) Upload(c *drift.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	h.upload(c, ownerID)
}

// UploadMe replaces the caller's own headshot.
func (h *PhotoHandler) UploadMe(c *drift.Context) {
	ownerID, ok := h.resolveSelf(c)
	if !ok {
		return
	}

	h.upload(c, ownerID)
}

func (h *PhotoHandler) upload(c *drift.Context, ownerID uuid.UUID) {
	if err := c.Request.ParseMultipartForm(services.MaxPhotoSize); err != nil {
		c.BadRequest("invalid multipart form")
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.BadRequest("photo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := h.photoService.UploadHeadshot(
		context.Background(),
		ownerID,
		header.Filename,
		contentType,
		header.Size,
		file,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAnImage):
			c.BadRequest("file must be an image")
		case errors.Is(err, services.ErrFileTooLarge):
			c.BadRequest("file must be smaller than 5MB")
		case errors.Is(err, services.ErrProfileNotFound):
			c.NotFound("user not found")
		default:
			c.InternalServerError("failed to upload photo")
		}
		return
	}

	_ = c.JSON(200, dto.UploadPhotoResponse{URL: url})
}

// Remove deletes the headshot of the cast member named in the path.
func (h *PhotoHandler) Remove(c *drift.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	h.remove(c, ownerID)
}

// RemoveMe deletes the caller's own headshot.
func (h *PhotoHandler) RemoveMe(c *drift.Context) {
	ownerID, ok := h.resolveSelf(c)
	if !ok {
		return
	}

	h.remove(c, ownerID)
}

func (h *PhotoHandler) remove(c *drift.Context, ownerID uuid.UUID) {
	if err := h.photoService.RemoveHeadshot(context.Background(), ownerID); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.NotFound("user not found")
			return
		}
		c.InternalServerError("failed to remove photo")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "photo removed"})
}

func (h *PhotoHandler) resolveSelf(c *drift.Context) (uuid.UUID, bool) {
	email := middleware.GetEmail(c)
	if email == "" {
		c.Unauthorized("not authenticated")
		return uuid.Nil, false
	}

	profile, err := h.profileService.ResolveByEmail(context.Background(), email)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.NotFound("profile not found")
			return uuid.Nil, false
		}
		c.InternalServerError("failed to resolve profile")
		return uuid.Nil, false
	}

	return profile.ID, true
}
