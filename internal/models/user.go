package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile roles. RoleLegacyUser appears in records written by early
// versions of the system and is normalized to RoleCast at read time.
const (
	RoleAdmin      = "admin"
	RoleCast       = "cast"
	RoleLegacyUser = "user"
)

// User is a profile record from the users collection. It doubles as
// the cast-member record: role distinguishes administrators from cast.
// ID and timestamps are row-level attributes and are not part of the
// stored document body.
type User struct {
	ID        uuid.UUID `json:"-"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Firstname string    `json:"firstname,omitempty"`
	Lastname  string    `json:"lastname,omitempty"`
	Role      string    `json:"role,omitempty"`
	Years     []int     `json:"years,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Headshot  string    `json:"headshot,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Normalize folds legacy record shapes into the canonical form:
// firstname/lastname pairs into name, headshot into photoUrl, and the
// legacy 'user' role into 'cast'. Applied once at read time so callers
// never need per-field fallback chains.
func (u *User) Normalize() {
	if u.Name == "" {
		u.Name = strings.TrimSpace(u.Firstname + " " + u.Lastname)
	}
	if u.PhotoURL == "" && u.Headshot != "" {
		u.PhotoURL = u.Headshot
	}
	if u.Role == "" || u.Role == RoleLegacyUser {
		u.Role = RoleCast
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
