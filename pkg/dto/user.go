package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Years     []int     `json:"years,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Years []int  `json:"years,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// UpdateUserRequest is a partial update; nil fields are left alone.
// Role is deliberately absent, role changes go through SetRole.
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
	Years *[]int  `json:"years,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type UploadPhotoResponse struct {
	URL string `json:"url"`
}
