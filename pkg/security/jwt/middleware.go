package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by the auth middleware for downstream handlers.
const (
	LocalsUserID = "userId"
	LocalsEmail  = "email"
)

// NewAuthMiddleware returns a Fiber middleware that validates a
// "Bearer <JWT>" Authorization header against the generator's secret.
// On success the verified claims are attached to the request Locals;
// the user record is not re-fetched, the claims are trusted as-is for
// the token's lifetime.
func NewAuthMiddleware(gen *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		scheme, tokenStr, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization header must be of the form: Bearer <token>"})
		}
		claims, err := gen.Verify(strings.TrimSpace(tokenStr))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(LocalsUserID, claims.Subject)
		c.Locals(LocalsEmail, claims.Email)
		return c.Next()
	}
}
