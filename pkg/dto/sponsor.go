package dto

import (
	"time"

	"github.com/google/uuid"
)

type SponsorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	Tier      int       `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSponsorRequest struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
	Tier    int    `json:"tier"`
}

type UpdateSponsorRequest struct {
	Name    *string `json:"name,omitempty"`
	Website *string `json:"website,omitempty"`
	Tier    *int    `json:"tier,omitempty"`
}
