package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"newsapi/internal/model"
)

// IdentityLocalKey is the key under which RequireAuth stores the *model.Identity.
const IdentityLocalKey = "identity"

// Authenticator validates a bearer token. service.AuthService satisfies it.
type Authenticator interface {
	Authenticate(token string) (*model.Identity, error)
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func BearerToken(c *fiber.Ctx) string {
	scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth rejects requests without a valid bearer token. The authenticator's
// error is returned to the ErrorHandler unchanged.
func RequireAuth(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := authn.Authenticate(BearerToken(c))
		if err != nil {
			return err
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}

// WriteGuard returns RequireAuth when enforce is set and Noop otherwise.
func WriteGuard(enforce bool, authn Authenticator) fiber.Handler {
	if !enforce {
		return Noop()
	}
	return RequireAuth(authn)
}

// Noop passes every request through. It stands in for RequireAuth on open write routes.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
