package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/blob"
)

// MaxPhotoSize bounds uploads before any storage call is made.
const MaxPhotoSize = 5 << 20

var (
	ErrNotAnImage   = errors.New("file must be an image")
	ErrFileTooLarge = errors.New("file must be smaller than 5MB")
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// PhotoService runs the headshot upload/replace/remove flows: blob
// writes plus the record updates that reference them. Steps are not
// transactional; later-step failures never roll back earlier ones.
type PhotoService struct {
	blobs    blob.Store
	profiles *ProfileService
	gallery  *GalleryService
}

func NewPhotoService(blobs blob.Store, profiles *ProfileService, gallery *GalleryService) *PhotoService {
	return &PhotoService{blobs: blobs, profiles: profiles, gallery: gallery}
}

// UploadHeadshot validates, uploads, and links a new headshot for a
// cast member, then best-effort deletes the previous blob. A failed
// old-blob delete leaves an orphan and is only logged.
func (s *PhotoService) UploadHeadshot(ctx context.Context, ownerID uuid.UUID, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if size > MaxPhotoSize {
		return "", ErrFileTooLarge
	}

	profile, err := s.profiles.GetByID(ctx, ownerID)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("headshots/%s/%d-%s", ownerID, time.Now().UnixMilli(), SanitizeFilename(filename))
	if err := s.blobs.Upload(ctx, path, r, size, contentType); err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url := s.blobs.URL(path)
	if err := s.profiles.SetPhotoURL(ctx, ownerID, url); err != nil {
		return "", fmt.Errorf("failed to link photo: %w", err)
	}

	if old := profile.PhotoURL; old != "" && old != url {
		if err := s.blobs.Delete(ctx, old); err != nil {
			log.Printf("Failed to delete old headshot %s: %v", old, err)
		}
	}

	return url, nil
}

// RemoveHeadshot deletes a member's current headshot: the blob first,
// then any cast photo records referencing its URL, then the profile
// field. Each step is independently caught; the first failure after
// the blob delete is reported but earlier steps stand.
func (s *PhotoService) RemoveHeadshot(ctx context.Context, ownerID uuid.UUID) error {
	profile, err := s.profiles.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if profile.PhotoURL == "" {
		return nil
	}

	if err := s.blobs.Delete(ctx, profile.PhotoURL); err != nil {
		log.Printf("Failed to delete headshot blob %s: %v", profile.PhotoURL, err)
	}

	if err := s.gallery.DeleteCastPhotosForMember(ctx, ownerID, profile.PhotoURL); err != nil {
		return fmt.Errorf("failed to remove cast photo records: %w", err)
	}

	if err := s.profiles.SetPhotoURL(ctx, ownerID, ""); err != nil {
		return fmt.Errorf("failed to clear photo field: %w", err)
	}

	return nil
}

// SanitizeFilename collapses whitespace to underscores and strips
// everything outside [A-Za-z0-9._-].
func SanitizeFilename(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	return unsafeFilenameChars.ReplaceAllString(name, "")
}
