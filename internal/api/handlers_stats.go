package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/amal/internal/services"
)

func (handler *Handler) GetStatsSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := services.ValidateTrackingDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date parameter is required (YYYY-MM-DD)")
	}

	record, err := handler.trackingService.FetchRecord(user.ID, date)
	if err != nil {
		log.Printf("fetch tracking record failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	completed, percent := services.DailyProgress(record)
	return c.JSON(fiber.Map{
		"date":      record.Date,
		"completed": completed,
		"total":     len(record.ObservanceFlags()),
		"percent":   percent,
	})
}
