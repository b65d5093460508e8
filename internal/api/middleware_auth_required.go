package api

import "github.com/gofiber/fiber/v2"

// AuthRequired resolves the session token to a user and scopes the request to
// that user; every tracking handler downstream takes its user id from here
// and never from the payload.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
