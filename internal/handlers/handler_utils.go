package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func getEmail(c *fiber.Ctx) (string, error) {
	v := c.Locals("email")
	if v == nil {
		return "", fmt.Errorf("unauthorized")
	}

	email, ok := v.(string)
	if !ok || email == "" {
		return "", fmt.Errorf("invalid email type: %T", v)
	}
	return email, nil
}
