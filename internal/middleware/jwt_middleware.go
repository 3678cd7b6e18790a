package middleware

import (
	"log"
	"strings"

	"agromarket/internal/services"
	"agromarket/internal/session"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that checks for a valid JWT token and
// resolves it into an explicit session value for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(session.LocalsKey, session.FromClaims(claims))

		return c.Next()
	}
}

// CurrentSession retrieves the session resolved by AuthRequired. Handlers on
// unprotected routes get a zero session.
func CurrentSession(c *fiber.Ctx) session.Session {
	if sess, ok := c.Locals(session.LocalsKey).(session.Session); ok {
		return sess
	}
	return session.Session{}
}
