package dto

import (
	"time"

	"github.com/google/uuid"
)

type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type UpdateAnnouncementRequest struct {
	Title   *string `json:"title,omitempty"`
	Message *string `json:"message,omitempty"`
}
