package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/saahla-dz/saahla_be/internal/utils"
)

func AttachJWTLocals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Locals("user")
		if raw == nil {
			return fiber.ErrUnauthorized
		}

		token, ok := raw.(*jwt.Token)
		if !ok || token == nil {
			return fiber.ErrUnauthorized
		}

		claims, ok := token.Claims.(*utils.Claims)
		if !ok {
			return fiber.ErrUnauthorized
		}

		email := strings.ToLower(strings.TrimSpace(claims.Email))
		accountType := strings.ToLower(strings.TrimSpace(claims.Type))

		if email == "" {
			return fiber.ErrUnauthorized
		}

		c.Locals("email", email)
		c.Locals("accountType", accountType)

		return c.Next()
	}
}
