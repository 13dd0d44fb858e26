package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an authentication record: credentials only. The
// application-level profile for the same principal lives in the users
// collection, keyed by email, and is reconciled at sign-in.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
