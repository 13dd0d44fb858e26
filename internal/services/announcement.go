package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/store"
)

type AnnouncementService struct {
	store store.Store
}

func NewAnnouncementService(st store.Store) *AnnouncementService {
	return &AnnouncementService{store: st}
}

// List returns announcements newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	docs, err := s.store.Query(ctx, store.CollectionAnnouncements, nil)
	if err != nil {
		return nil, err
	}

	announcements := make([]models.Announcement, 0, len(docs))
	for i := range docs {
		a, err := decodeAnnouncement(&docs[i])
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, *a)
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})

	return announcements, nil
}

func (s *AnnouncementService) Create(ctx context.Context, title, message string) (uuid.UUID, error) {
	return s.store.Insert(ctx, store.CollectionAnnouncements, models.Announcement{
		Title:   title,
		Message: message,
	})
}

func (s *AnnouncementService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionAnnouncements, id, fields)
}

func (s *AnnouncementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, store.CollectionAnnouncements, id)
}

func decodeAnnouncement(doc *store.Document) (*models.Announcement, error) {
	var a models.Announcement
	if err := doc.Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode announcement: %w", err)
	}
	a.ID = doc.ID
	a.CreatedAt = doc.CreatedAt
	a.UpdatedAt = doc.UpdatedAt
	return &a, nil
}
