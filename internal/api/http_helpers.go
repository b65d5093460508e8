package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/amal/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
