package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// mockStore mocks the document store for service tests
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Query(ctx context.Context, collection string, filter store.Filter) ([]store.Document, error) {
	args := m.Called(ctx, collection, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Document), args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, collection string, id uuid.UUID) (*store.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Document), args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, collection string, fields any) (uuid.UUID, error) {
	args := m.Called(ctx, collection, fields)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, collection string, id uuid.UUID, partial map[string]any) error {
	args := m.Called(ctx, collection, id, partial)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func userDoc(id uuid.UUID, data string) store.Document {
	return store.Document{
		ID:         id,
		Collection: store.CollectionUsers,
		Data:       []byte(data),
	}
}
