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

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func announcementResponse(a *models.Announcement) dto.AnnouncementResponse {
	return dto.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// List returns announcements, newest first.
func (h *AnnouncementHandler) List(c *drift.Context) {
	announcements, err := h.announcementService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list announcements")
		return
	}

	response := make([]dto.AnnouncementResponse, len(announcements))
	for i := range announcements {
		response[i] = announcementResponse(&announcements[i])
	}

	_ = c.JSON(200, response)
}

func (h *AnnouncementHandler) Create(c *drift.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}
	if req.Message == "" {
		c.BadRequest("message is required")
		return
	}

	id, err := h.announcementService.Create(context.Background(), req.Title, req.Message)
	if err != nil {
		c.InternalServerError("failed to create announcement")
		return
	}

	_ = c.JSON(201, map[string]string{"id": id.String()})
}

func (h *AnnouncementHandler) Update(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid announcement id")
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}

	if err := h.announcementService.Update(context.Background(), id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("announcement not found")
			return
		}
		c.InternalServerError("failed to update announcement")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "announcement updated"})
}

func (h *AnnouncementHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid announcement id")
		return
	}

	if err := h.announcementService.Delete(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete announcement")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "announcement deleted"})
}
