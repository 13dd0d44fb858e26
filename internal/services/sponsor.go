package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/store"
)

type SponsorService struct {
	store store.Store
}

func NewSponsorService(st store.Store) *SponsorService {
	return &SponsorService{store: st}
}

// List returns all sponsors in display order: tier descending, then
// the most recently added first within a tier.
func (s *SponsorService) List(ctx context.Context) ([]models.Sponsor, error) {
	docs, err := s.store.Query(ctx, store.CollectionSponsors, nil)
	if err != nil {
		return nil, err
	}

	sponsors := make([]models.Sponsor, 0, len(docs))
	for i := range docs {
		sponsor, err := decodeSponsor(&docs[i])
		if err != nil {
			return nil, err
		}
		sponsors = append(sponsors, *sponsor)
	}

	sort.SliceStable(sponsors, func(i, j int) bool {
		if sponsors[i].Tier != sponsors[j].Tier {
			return sponsors[i].Tier > sponsors[j].Tier
		}
		return sponsors[i].CreatedAt.After(sponsors[j].CreatedAt)
	})

	return sponsors, nil
}

func (s *SponsorService) Create(ctx context.Context, sponsor models.Sponsor) (uuid.UUID, error) {
	return s.store.Insert(ctx, store.CollectionSponsors, sponsor)
}

func (s *SponsorService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return s.store.Update(ctx, store.CollectionSponsors, id, fields)
}

func (s *SponsorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, store.CollectionSponsors, id)
}

func decodeSponsor(doc *store.Document) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	if err := doc.Decode(&sponsor); err != nil {
		return nil, fmt.Errorf("failed to decode sponsor: %w", err)
	}
	sponsor.ID = doc.ID
	sponsor.CreatedAt = doc.CreatedAt
	sponsor.UpdatedAt = doc.UpdatedAt
	return &sponsor, nil
}
