package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	IdentityIDKey = "identity_id"
	EmailKey      = "identity_email"
	AdminClaimKey = "identity_admin_claim"
)

func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(IdentityIDKey, claims.IdentityID)
		c.Set(EmailKey, claims.Email)
		c.Set(AdminClaimKey, claims.Admin)

		c.Next()
	}
}

func GetIdentityID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(IdentityIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

func GetEmail(c *drift.Context) string {
	if email, ok := c.Get(EmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

func GetAdminClaim(c *drift.Context) bool {
	if claim, ok := c.Get(AdminClaimKey); ok {
		if b, ok := claim.(bool); ok {
			return b
		}
	}
	return false
}
