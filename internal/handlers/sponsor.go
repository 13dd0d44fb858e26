package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/internal/store"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type SponsorHandler struct {
	sponsorService *services.SponsorService
}

func NewSponsorHandler(sponsorService *services.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorService: sponsorService}
}

func sponsorResponse(s *models.Sponsor) dto.SponsorResponse {
	return dto.SponsorResponse{
		ID:        s.ID,
		Name:      s.Name,
		Website:   s.Website,
		Tier:      s.Tier,
		CreatedAt: s.CreatedAt,
	}
}

func validTier(tier int) bool {
	return tier >= models.SponsorTierMin && tier <= models.SponsorTierMax
}

// List returns sponsors in display order: tier descending, newest
// first within a tier.
func (h *SponsorHandler) List(c *drift.Context) {
	sponsors, err := h.sponsorService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list sponsors")
		return
	}

	response := make([]dto.SponsorResponse, len(sponsors))
	for i := range sponsors {
		response[i] = sponsorResponse(&sponsors[i])
	}

	_ = c.JSON(200, response)
}

func (h *SponsorHandler) Create(c *drift.Context) {
	var req dto.CreateSponsorRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if !validTier(req.Tier) {
		c.BadRequest(fmt.Sprintf("tier must be between %d and %d", models.SponsorTierMin, models.SponsorTierMax))
		return
	}

	id, err := h.sponsorService.Create(context.Background(), models.Sponsor{
		Name:    req.Name,
		Website: req.Website,
		Tier:    req.Tier,
	})
	if err != nil {
		c.InternalServerError("failed to create sponsor")
		return
	}

	_ = c.JSON(201, map[string]string{"id": id.String()})
}

func (h *SponsorHandler) Update(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid sponsor id")
		return
	}

	var req dto.UpdateSponsorRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Tier != nil {
		if !validTier(*req.Tier) {
			c.BadRequest(fmt.Sprintf("tier must be between %d and %d", models.SponsorTierMin, models.SponsorTierMax))
			return
		}
		fields["tier"] = *req.Tier
	}

	if err := h.sponsorService.Update(context.Background(), id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("sponsor not found")
			return
		}
		c.InternalServerError("failed to update sponsor")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "sponsor updated"})
}

func (h *SponsorHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid sponsor id")
		return
	}

	if err := h.sponsorService.Delete(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete sponsor")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "sponsor deleted"})
}
