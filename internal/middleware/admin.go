package middleware

import (
	"context"
	"errors"
	"log"

	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

// ProfileResolver is the lookup the admin gate needs from the profile
// service.
type ProfileResolver interface {
	ResolveByEmail(ctx context.Context, email string) (*models.User, error)
}

// AdminRequired gates administrative mutations. The check runs on
// every request rather than being cached across identity changes: the
// administrative claim on the token grants access directly, otherwise
// the stored profile role decides. Resolution failure fails closed,
// so "role unknown" is never treated as admin; the underlying error
// is logged for diagnostics.
func AdminRequired(profiles ProfileResolver) drift.HandlerFunc {
	return func(c *drift.Context) {
		if GetAdminClaim(c) {
			c.Next()
			return
		}

		email := GetEmail(c)
		if email == "" {
			c.Forbidden("admin access required")
			return
		}

		profile, err := profiles.ResolveByEmail(context.Background(), email)
		if err != nil {
			if !errors.Is(err, services.ErrProfileNotFound) {
				log.Printf("Admin gate: profile resolution failed for %s: %v", email, err)
			}
			c.Forbidden("admin access required")
			return
		}

		if !profile.IsAdmin() {
			c.Forbidden("admin access required")
			return
		}

		c.Next()
	}
}
