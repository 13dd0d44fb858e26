package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sponsorDoc(data string, createdAt time.Time) store.Document {
	return store.Document{
		ID:         uuid.New(),
		Collection: store.CollectionSponsors,
		Data:       []byte(data),
		CreatedAt:  createdAt,
	}
}

func TestSponsorService_List_OrdersByTierThenRecency(t *testing.T) {
	st := new(mockStore)
	svc := NewSponsorService(st)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st.On("Query", mock.Anything, store.CollectionSponsors, store.Filter(nil)).
		Return([]store.Document{
			sponsorDoc(`{"name":"Old Gold","tier":8}`, base),
			sponsorDoc(`{"name":"Bronze","tier":2}`, base.Add(time.Hour)),
			sponsorDoc(`{"name":"New Gold","tier":8}`, base.Add(2*time.Hour)),
			sponsorDoc(`{"name":"Platinum","tier":10}`, base.Add(3*time.Hour)),
		}, nil)

	sponsors, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, sponsors, 4)
	assert.Equal(t, "Platinum", sponsors[0].Name)
	assert.Equal(t, "New Gold", sponsors[1].Name)
	assert.Equal(t, "Old Gold", sponsors[2].Name)
	assert.Equal(t, "Bronze", sponsors[3].Name)
}

func TestSponsorService_Create(t *testing.T) {
	st := new(mockStore)
	svc := NewSponsorService(st)
	id := uuid.New()

	sponsor := models.Sponsor{Name: "Acme", Website: "https://acme.test", Tier: 5}
	st.On("Insert", mock.Anything, store.CollectionSponsors, sponsor).Return(id, nil)

	got, err := svc.Create(context.Background(), sponsor)

	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSponsorService_Update_EmptyPatchIsNoOp(t *testing.T) {
	st := new(mockStore)
	svc := NewSponsorService(st)

	err := svc.Update(context.Background(), uuid.New(), map[string]any{})

	require.NoError(t, err)
	st.AssertNotCalled(t, "Update")
}

func TestSponsorService_Delete(t *testing.T) {
	st := new(mockStore)
	svc := NewSponsorService(st)
	id := uuid.New()

	st.On("Delete", mock.Anything, store.CollectionSponsors, id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
	st.AssertExpectations(t)
}
