package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/domain"
)

// ErrForbidden signals a valid token whose role does not permit the
// requested operation.
var ErrForbidden = errors.New("insufficient role")

// Authorize decides whether the role claim permits an operation restricted
// to the given roles. It fails closed: a missing or unrecognized role claim
// denies, and an empty allowed set denies every caller. No role hierarchy
// is inferred; operations reachable by several roles list them all.
func Authorize(claims *Claims, allowed ...domain.Role) error {
	if claims == nil {
		return ErrForbidden
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return ErrForbidden
	}
	for _, candidate := range allowed {
		if candidate == role {
			return nil
		}
	}
	return ErrForbidden
}

// RequireRole guards a route group to the listed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if err := Authorize(claims, allowed...); err != nil {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}
