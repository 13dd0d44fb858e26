package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/database"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/internal/store"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	store   store.Store
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db, store: store.NewPostgres(db)}
}

// Store exposes the document store bound to the test database
func (f *Fixtures) Store() store.Store {
	return f.store
}

// CreateIdentity registers a sign-in identity with a known password
func (f *Fixtures) CreateIdentity(t *testing.T, email, password string) *models.Identity {
	t.Helper()

	identity, err := services.NewIdentityService(f.db).Register(context.Background(), email, password)
	if err != nil {
		t.Fatalf("failed to create identity: %v", err)
	}
	return identity
}

// UserOption configures a test profile
type UserOption func(*models.User)

func WithRole(role string) UserOption {
	return func(u *models.User) { u.Role = role }
}

func WithEmail(email string) UserOption {
	return func(u *models.User) { u.Email = email }
}

func WithPhotoURL(url string) UserOption {
	return func(u *models.User) { u.PhotoURL = url }
}

// CreateProfile inserts a profile document with default values
func (f *Fixtures) CreateProfile(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email: fmt.Sprintf("member%d@example.com", f.counter),
		Name:  fmt.Sprintf("Test Member %d", f.counter),
		Role:  models.RoleCast,
		Years: []int{2024, 2025},
	}

	for _, opt := range opts {
		opt(user)
	}

	id, err := f.store.Insert(context.Background(), store.CollectionUsers, user)
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	user.ID = id

	return user
}

// CreateSponsor inserts a sponsor document
func (f *Fixtures) CreateSponsor(t *testing.T, name string, tier int) *models.Sponsor {
	t.Helper()

	sponsor := &models.Sponsor{
		Name:    name,
		Website: "https://example.com",
		Tier:    tier,
	}

	id, err := f.store.Insert(context.Background(), store.CollectionSponsors, sponsor)
	if err != nil {
		t.Fatalf("failed to create sponsor: %v", err)
	}
	sponsor.ID = id

	return sponsor
}

// CreateAnnouncement inserts an announcement document
func (f *Fixtures) CreateAnnouncement(t *testing.T, title, message string) *models.Announcement {
	t.Helper()

	announcement := &models.Announcement{
		Title:   title,
		Message: message,
	}

	id, err := f.store.Insert(context.Background(), store.CollectionAnnouncements, announcement)
	if err != nil {
		t.Fatalf("failed to create announcement: %v", err)
	}
	announcement.ID = id

	return announcement
}

// CreateGalleryPhoto inserts a gallery photo document
func (f *Fixtures) CreateGalleryPhoto(t *testing.T, title string) *models.GalleryPhoto {
	t.Helper()
	f.counter++

	photo := &models.GalleryPhoto{
		URL:   fmt.Sprintf("https://blobs.test/photos/gallery/%d.jpg", f.counter),
		Title: title,
	}

	id, err := f.store.Insert(context.Background(), store.CollectionGallery, photo)
	if err != nil {
		t.Fatalf("failed to create gallery photo: %v", err)
	}
	photo.ID = id

	return photo
}

// CreateCastPhoto inserts a cast photo document linked to a member
func (f *Fixtures) CreateCastPhoto(t *testing.T, memberID uuid.UUID, url string) *models.CastPhoto {
	t.Helper()

	photo := &models.CastPhoto{
		CastMemberID: memberID,
		URL:          url,
	}

	id, err := f.store.Insert(context.Background(), store.CollectionCastPhotos, photo)
	if err != nil {
		t.Fatalf("failed to create cast photo: %v", err)
	}
	photo.ID = id

	return photo
}
