package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jmuir/stagedoor-api/internal/database"
)

// Postgres implements Store on top of the documents table. Equality
// filters are translated to JSONB containment so any field of a
// record can be matched without schema knowledge.
type Postgres struct {
	db *database.DB
}

func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Query(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if filter == nil {
		filter = Filter{}
	}

	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, collection, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND data @> $2
		ORDER BY created_at
	`, collection, filterJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Collection, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	return docs, nil
}

func (s *Postgres) Get(ctx context.Context, collection string, id uuid.UUID) (*Document, error) {
	var doc Document
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, collection, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&doc.ID, &doc.Collection, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (s *Postgres) Insert(ctx context.Context, collection string, fields any) (uuid.UUID, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var id uuid.UUID
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO documents (collection, data)
		VALUES ($1, $2)
		RETURNING id
	`, collection, data).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return id, nil
}

func (s *Postgres) Update(ctx context.Context, collection string, id uuid.UUID, partial map[string]any) error {
	patch, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}

	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE documents SET data = data || $1, updated_at = NOW()
		WHERE collection = $2 AND id = $3
	`, patch, collection, id)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete is idempotent: removing an id that no longer exists succeeds,
// so a repeated delete never surfaces an error to the caller.
func (s *Postgres) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
