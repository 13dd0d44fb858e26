package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryPhoto is a record from the gallery collection.
type GalleryPhoto struct {
	ID          uuid.UUID `json:"-"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// CastPhoto is a gallery photo bound to a cast member. CastMemberID
// must reference an existing user record at creation time.
type CastPhoto struct {
	ID           uuid.UUID `json:"-"`
	CastMemberID uuid.UUID `json:"castMemberId"`
	URL          string    `json:"url"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
