package models

import (
	"time"

	"github.com/google/uuid"
)

// Sponsor tiers are bounded; display order is tier descending with
// the most recently added sponsor first within a tier.
const (
	SponsorTierMin = 1
	SponsorTierMax = 10
)

type Sponsor struct {
	ID        uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	Tier      int       `json:"tier"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
