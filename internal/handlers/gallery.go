package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/internal/store"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type GalleryHandler struct {
	galleryService *services.GalleryService
}

func NewGalleryHandler(galleryService *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func galleryPhotoResponse(p *models.GalleryPhoto) dto.GalleryPhotoResponse {
	return dto.GalleryPhotoResponse{
		ID:          p.ID,
		URL:         p.URL,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func castPhotoResponse(p *models.CastPhoto) dto.CastPhotoResponse {
	return dto.CastPhotoResponse{
		ID:           p.ID,
		CastMemberID: p.CastMemberID,
		URL:          p.URL,
		Title:        p.Title,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
}

// List returns the general gallery, newest first.
func (h *GalleryHandler) List(c *drift.Context) {
	photos, err := h.galleryService.ListPhotos(context.Background())
	if err != nil {
		c.InternalServerError("failed to list gallery")
		return
	}

	response := make([]dto.GalleryPhotoResponse, len(photos))
	for i := range photos {
		response[i] = galleryPhotoResponse(&photos[i])
	}

	_ = c.JSON(200, response)
}

func (h *GalleryHandler) Create(c *drift.Context) {
	var req dto.CreateGalleryPhotoRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.URL == "" {
		c.BadRequest("url is required")
		return
	}

	ctx := context.Background()

	id, err := h.galleryService.AddPhoto(ctx, models.GalleryPhoto{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		c.InternalServerError("failed to add photo")
		return
	}

	_ = c.JSON(201, map[string]string{"id": id.String()})
}

func (h *GalleryHandler) Update(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid photo id")
		return
	}

	var req dto.UpdateGalleryPhotoRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	fields := map[string]any{}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if err := h.galleryService.UpdatePhoto(context.Background(), id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("photo not found")
			return
		}
		c.InternalServerError("failed to update photo")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "photo updated"})
}

func (h *GalleryHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid photo id")
		return
	}

	if err := h.galleryService.DeletePhoto(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete photo")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "photo deleted"})
}

// ListForMember returns the cast photos bound to one member.
func (h *GalleryHandler) ListForMember(c *drift.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid cast member id")
		return
	}

	photos, err := h.galleryService.PhotosForMember(context.Background(), memberID)
	if err != nil {
		c.InternalServerError("failed to list cast photos")
		return
	}

	response := make([]dto.CastPhotoResponse, len(photos))
	for i := range photos {
		response[i] = castPhotoResponse(&photos[i])
	}

	_ = c.JSON(200, response)
}

func (h *GalleryHandler) CreateCastPhoto(c *drift.Context) {
	var req dto.CreateCastPhotoRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.CastMemberID == uuid.Nil {
		c.BadRequest("cast_member_id is required")
		return
	}
	if req.URL == "" {
		c.BadRequest("url is required")
		return
	}

	id, err := h.galleryService.AddCastPhoto(context.Background(), models.CastPhoto{
		CastMemberID: req.CastMemberID,
		URL:          req.URL,
		Title:        req.Title,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrCastMemberNotFound) {
			c.BadRequest("cast member does not exist")
			return
		}
		c.InternalServerError("failed to add cast photo")
		return
	}

	_ = c.JSON(201, map[string]string{"id": id.String()})
}

func (h *GalleryHandler) DeleteCastPhoto(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid cast photo id")
		return
	}

	if err := h.galleryService.DeleteCastPhoto(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete cast photo")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "cast photo deleted"})
}
