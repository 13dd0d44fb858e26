package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/store"
)

var (
	// ErrProfileNotFound means the lookup succeeded and no record
	// exists. A store-communication failure is returned as a distinct
	// error so callers never confuse "role unknown" with "not admin".
	ErrProfileNotFound = errors.New("profile not found")

	ErrInvalidRole = errors.New("invalid role")
)

// ProfileService maps identities to stored profile records and keeps
// profile roles aligned with administrative claims at sign-in time.
type ProfileService struct {
	store store.Store
}

func NewProfileService(st store.Store) *ProfileService {
	return &ProfileService{store: st}
}

// ResolveByEmail looks a profile up by equality on the email field.
// Email uniqueness is enforced at write time, so the first match is
// the only match.
func (s *ProfileService) ResolveByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrProfileNotFound
	}

	docs, err := s.store.Query(ctx, store.CollectionUsers, store.Filter{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrProfileNotFound
	}

	return decodeUser(&docs[0])
}

// Reconcile aligns the stored profile with the administrative claim
// and returns the effective role for the session:
//   - claim present, no profile: create one with role admin
//   - claim present, profile non-admin: promote it (never demote on
//     claim absence)
//   - no claim, no profile: create one with role cast
//
// Profile write failures are logged and non-fatal; sign-in proceeds
// with the best-available role.
func (s *ProfileService) Reconcile(ctx context.Context, email string, adminClaim bool) string {
	claimRole := models.RoleCast
	if adminClaim {
		claimRole = models.RoleAdmin
	}

	profile, err := s.ResolveByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			log.Printf("Reconciliation: profile resolution failed for %s: %v", email, err)
			return claimRole
		}

		user := models.User{Email: email, Role: claimRole}
		if _, insertErr := s.store.Insert(ctx, store.CollectionUsers, user); insertErr != nil {
			log.Printf("Reconciliation: failed to create profile for %s: %v", email, insertErr)
		}
		return claimRole
	}

	if adminClaim && !profile.IsAdmin() {
		patch := map[string]any{"role": models.RoleAdmin}
		if updateErr := s.store.Update(ctx, store.CollectionUsers, profile.ID, patch); updateErr != nil {
			log.Printf("Reconciliation: failed to promote %s to admin: %v", email, updateErr)
		}
	}

	if adminClaim {
		return models.RoleAdmin
	}
	return profile.Role
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	doc, err := s.store.Get(ctx, store.CollectionUsers, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return decodeUser(doc)
}

// List returns all profiles, optionally filtered by role, in creation
// order. The role filter is applied after decoding: legacy documents
// store "user" or no role at all, which normalization maps to cast, so
// a store-side role filter would skip them.
func (s *ProfileService) List(ctx context.Context, role string) ([]models.User, error) {
	docs, err := s.store.Query(ctx, store.CollectionUsers, nil)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for i := range docs {
		user, err := decodeUser(&docs[i])
		if err != nil {
			return nil, err
		}
		if role != "" && user.Role != role {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

// Create adds a profile record. The role defaults to cast; this path
// never produces an admin; promotion is a separate operation.
func (s *ProfileService) Create(ctx context.Context, user models.User) (uuid.UUID, error) {
	if user.Role == "" || user.Role == models.RoleAdmin {
		user.Role = models.RoleCast
	}
	return s.store.Insert(ctx, store.CollectionUsers, user)
}

// Update applies a partial update to profile fields. The role key is
// stripped unconditionally: role mutation goes through SetRole only.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	delete(fields, "role")
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionUsers, id, fields)
}

// SetRole is the admin-only role mutation.
func (s *ProfileService) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	if role != models.RoleAdmin && role != models.RoleCast {
		return ErrInvalidRole
	}
	return s.store.Update(ctx, store.CollectionUsers, id, map[string]any{"role": role})
}

func (s *ProfileService) SetPhotoURL(ctx context.Context, id uuid.UUID, url string) error {
	return s.store.Update(ctx, store.CollectionUsers, id, map[string]any{"photoUrl": url})
}

func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, store.CollectionUsers, id)
}

func decodeUser(doc *store.Document) (*models.User, error) {
	var user models.User
	if err := doc.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	user.ID = doc.ID
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt
	user.Normalize()
	return &user, nil
}
