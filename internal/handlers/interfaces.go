package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
)

// IdentityServiceInterface defines the methods used by handlers from IdentityService
type IdentityServiceInterface interface {
	Register(ctx context.Context, email, password string) (*models.Identity, error)
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Identity, error)
}

// ProfileServiceInterface defines the methods used by handlers from ProfileService
type ProfileServiceInterface interface {
	ResolveByEmail(ctx context.Context, email string) (*models.User, error)
	Reconcile(ctx context.Context, email string, adminClaim bool) string
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, role string) ([]models.User, error)
	Create(ctx context.Context, user models.User) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	SetRole(ctx context.Context, id uuid.UUID, role string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, identityID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllIdentityTokens(ctx context.Context, identityID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(identityID uuid.UUID, email string, admin bool) (*services.TokenPair, error)
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}
