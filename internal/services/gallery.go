package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/store"
)

var ErrCastMemberNotFound = errors.New("cast member not found")

// GalleryService manages the general gallery and the per-member cast
// photo collection.
type GalleryService struct {
	store store.Store
}

func NewGalleryService(st store.Store) *GalleryService {
	return &GalleryService{store: st}
}

func (s *GalleryService) ListPhotos(ctx context.Context) ([]models.GalleryPhoto, error) {
	docs, err := s.store.Query(ctx, store.CollectionGallery, nil)
	if err != nil {
		return nil, err
	}

	photos := make([]models.GalleryPhoto, 0, len(docs))
	for i := range docs {
		photo, err := decodeGalleryPhoto(&docs[i])
		if err != nil {
			return nil, err
		}
		photos = append(photos, *photo)
	}

	// Newest first. The store returns creation order, so the sort is
	// applied here rather than trusting the fetch.
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})

	return photos, nil
}

func (s *GalleryService) AddPhoto(ctx context.Context, photo models.GalleryPhoto) (uuid.UUID, error) {
	return s.store.Insert(ctx, store.CollectionGallery, photo)
}

func (s *GalleryService) UpdatePhoto(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionGallery, id, fields)
}

func (s *GalleryService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, store.CollectionGallery, id)
}

// AddCastPhoto links a photo to a cast member. The member must exist;
// dangling castMemberId references are rejected at write time.
func (s *GalleryService) AddCastPhoto(ctx context.Context, photo models.CastPhoto) (uuid.UUID, error) {
	if _, err := s.store.Get(ctx, store.CollectionUsers, photo.CastMemberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return uuid.Nil, ErrCastMemberNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to check cast member: %w", err)
	}
	return s.store.Insert(ctx, store.CollectionCastPhotos, photo)
}

func (s *GalleryService) PhotosForMember(ctx context.Context, memberID uuid.UUID) ([]models.CastPhoto, error) {
	docs, err := s.store.Query(ctx, store.CollectionCastPhotos, store.Filter{"castMemberId": memberID})
	if err != nil {
		return nil, err
	}

	photos := make([]models.CastPhoto, 0, len(docs))
	for i := range docs {
		photo, err := decodeCastPhoto(&docs[i])
		if err != nil {
			return nil, err
		}
		photos = append(photos, *photo)
	}
	return photos, nil
}

func (s *GalleryService) DeleteCastPhoto(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, store.CollectionCastPhotos, id)
}

// DeleteCastPhotosForMember removes a member's cast photo records. A
// non-empty url restricts the delete to records referencing that url;
// otherwise all of the member's records go.
func (s *GalleryService) DeleteCastPhotosForMember(ctx context.Context, memberID uuid.UUID, url string) error {
	filter := store.Filter{"castMemberId": memberID}
	if url != "" {
		filter["url"] = url
	}

	docs, err := s.store.Query(ctx, store.CollectionCastPhotos, filter)
	if err != nil {
		return err
	}

	for i := range docs {
		if err := s.store.Delete(ctx, store.CollectionCastPhotos, docs[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func decodeGalleryPhoto(doc *store.Document) (*models.GalleryPhoto, error) {
	var photo models.GalleryPhoto
	if err := doc.Decode(&photo); err != nil {
		return nil, fmt.Errorf("failed to decode gallery photo: %w", err)
	}
	photo.ID = doc.ID
	photo.CreatedAt = doc.CreatedAt
	photo.UpdatedAt = doc.UpdatedAt
	return &photo, nil
}

func decodeCastPhoto(doc *store.Document) (*models.CastPhoto, error) {
	var photo models.CastPhoto
	if err := doc.Decode(&photo); err != nil {
		return nil, fmt.Errorf("failed to decode cast photo: %w", err)
	}
	photo.ID = doc.ID
	photo.CreatedAt = doc.CreatedAt
	photo.UpdatedAt = doc.UpdatedAt
	return &photo, nil
}
