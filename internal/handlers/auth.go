package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/config"
	"github.com/jmuir/stagedoor-api/internal/middleware"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// AuthHandler implements the sign-in surface. Sign-in reconciles the
// stored profile against the administrative claim before issuing
// tokens, so the returned role is always the effective one.
type AuthHandler struct {
	cfg             *config.Config
	identityService IdentityServiceInterface
	profileService  ProfileServiceInterface
	tokenService    TokenServiceInterface
	jwtService      JWTServiceInterface
}

func NewAuthHandler(
	cfg *config.Config,
	identityService IdentityServiceInterface,
	profileService ProfileServiceInterface,
	tokenService TokenServiceInterface,
	jwtService JWTServiceInterface,
) *AuthHandler {
	return &AuthHandler{
		cfg:             cfg,
		identityService: identityService,
		profileService:  profileService,
		tokenService:    tokenService,
		jwtService:      jwtService,
	}
}

// redirectFor maps an effective role to the post-login landing page.
func redirectFor(role string) string {
	if role == models.RoleAdmin {
		return "/admin"
	}
	return "/company-portal"
}

func (h *AuthHandler) Register(c *drift.Context) {
	var req dto.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		c.BadRequest("email and password are required")
		return
	}
	if len(req.Password) < 8 {
		c.BadRequest("password must be at least 8 characters")
		return
	}

	ctx := context.Background()

	identity, err := h.identityService.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			_ = c.JSON(409, dto.ErrorResponse{
				Code:    "auth/email-already-in-use",
				Message: "an account with this email already exists",
			})
			return
		}
		c.InternalServerError("failed to create account")
		return
	}

	adminClaim := h.cfg.IsAdminEmail(identity.Email)
	role := h.profileService.Reconcile(ctx, identity.Email, adminClaim)

	if req.Name != "" {
		if profile, perr := h.profileService.ResolveByEmail(ctx, identity.Email); perr == nil && profile.Name == "" {
			_ = h.profileService.Update(ctx, profile.ID, map[string]any{"name": req.Name})
		}
	}

	h.issueTokens(c, 201, identity, adminClaim, role)
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		c.BadRequest("email and password are required")
		return
	}

	ctx := context.Background()

	identity, err := h.identityService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			_ = c.JSON(401, dto.ErrorResponse{
				Code:    "auth/invalid-credential",
				Message: "invalid email or password",
			})
			return
		}
		c.InternalServerError("sign-in failed")
		return
	}

	adminClaim := h.cfg.IsAdminEmail(identity.Email)
	role := h.profileService.Reconcile(ctx, identity.Email, adminClaim)

	h.issueTokens(c, 200, identity, adminClaim, role)
}

func (h *AuthHandler) issueTokens(c *drift.Context, status int, identity *models.Identity, adminClaim bool, role string) {
	tokenPair, err := h.jwtService.GenerateTokenPair(identity.ID, identity.Email, adminClaim)
	if err != nil {
		c.InternalServerError("failed to generate tokens")
		return
	}

	tokenHash := services.HashToken(tokenPair.RefreshToken)
	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	if err := h.tokenService.StoreRefreshToken(context.Background(), identity.ID, tokenHash, expiresAt); err != nil {
		c.InternalServerError("failed to store refresh token")
		return
	}

	_ = c.JSON(status, dto.LoginResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
		Role:         role,
		RedirectTo:   redirectFor(role),
	})
}

func (h *AuthHandler) RefreshToken(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RefreshToken == "" {
		c.BadRequest("refresh_token is required")
		return
	}

	identityID, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.Unauthorized("invalid refresh token")
		return
	}

	tokenHash := services.HashToken(req.RefreshToken)
	ctx := context.Background()

	storedID, err := h.tokenService.ValidateRefreshToken(ctx, tokenHash)
	if err != nil || storedID != identityID {
		c.Unauthorized("refresh token not found or expired")
		return
	}

	identity, err := h.identityService.GetByID(ctx, identityID)
	if err != nil {
		c.Unauthorized("account not found")
		return
	}

	if err := h.tokenService.RevokeRefreshToken(ctx, tokenHash); err != nil {
		c.InternalServerError("failed to revoke old token")
		return
	}

	// The admin claim is re-derived from the allow-list on every
	// refresh, so allow-list changes take effect without a new sign-in.
	adminClaim := h.cfg.IsAdminEmail(identity.Email)

	tokenPair, err := h.jwtService.GenerateTokenPair(identity.ID, identity.Email, adminClaim)
	if err != nil {
		c.InternalServerError("failed to generate tokens")
		return
	}

	newTokenHash := services.HashToken(tokenPair.RefreshToken)
	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	if err := h.tokenService.StoreRefreshToken(ctx, identity.ID, newTokenHash, expiresAt); err != nil {
		c.InternalServerError("failed to store refresh token")
		return
	}

	_ = c.JSON(200, dto.TokenResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RefreshToken != "" {
		tokenHash := services.HashToken(req.RefreshToken)
		_ = h.tokenService.RevokeRefreshToken(context.Background(), tokenHash)
	}

	_ = c.JSON(200, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) LogoutAll(c *drift.Context) {
	identityID := middleware.GetIdentityID(c)
	if identityID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	if err := h.tokenService.RevokeAllIdentityTokens(context.Background(), identityID); err != nil {
		c.InternalServerError("failed to revoke tokens")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "all sessions logged out"})
}
