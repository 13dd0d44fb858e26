package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmuir/stagedoor-api/internal/database"
	"github.com/jmuir/stagedoor-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

// IdentityService is the authentication-provider side of the system:
// it owns credentials and nothing else.
type IdentityService struct {
	db *database.DB
}

func NewIdentityService(db *database.DB) *IdentityService {
	return &IdentityService{db: db}
}

func (s *IdentityService) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var identity models.Identity
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO identities (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at, updated_at
	`, email, string(hash)).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash,
		&identity.CreatedAt, &identity.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return &identity, nil
}

func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	var identity models.Identity
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM identities WHERE email = $1
	`, email).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash,
		&identity.CreatedAt, &identity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &identity, nil
}

func (s *IdentityService) GetByID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	var identity models.Identity
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM identities WHERE id = $1
	`, id).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash,
		&identity.CreatedAt, &identity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
