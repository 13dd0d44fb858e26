package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Collection names. All entity records live in one of these.
const (
	CollectionUsers         = "users"
	CollectionGallery       = "gallery"
	CollectionCastPhotos    = "castPhotos"
	CollectionSponsors      = "sponsors"
	CollectionAnnouncements = "announcements"
)

// ErrNotFound is returned when a document id does not exist. Callers
// must be able to tell "absent" apart from a store-communication
// failure, so transport errors are never folded into this sentinel.
var ErrNotFound = errors.New("document not found")

// Filter holds equality constraints applied to document fields.
type Filter map[string]any

// Document is a raw record as held by the store. Entity types decode
// from Data and carry over the row-level id and timestamps.
type Document struct {
	ID         uuid.UUID
	Collection string
	Data       json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store is the narrow document-store contract the rest of the
// application consumes. Query returns documents in creation order;
// entity-specific ordering is applied by callers after the fetch.
type Store interface {
	Query(ctx context.Context, collection string, filter Filter) ([]Document, error)
	Get(ctx context.Context, collection string, id uuid.UUID) (*Document, error)
	Insert(ctx context.Context, collection string, fields any) (uuid.UUID, error)
	Update(ctx context.Context, collection string, id uuid.UUID, partial map[string]any) error
	Delete(ctx context.Context, collection string, id uuid.UUID) error
}

// Decode unmarshals a document into an entity value.
func (d *Document) Decode(v any) error {
	return json.Unmarshal(d.Data, v)
}
