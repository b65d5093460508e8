package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/amal/internal/services"
)

func (handler *Handler) GetTracking(c *fiber.Ctx) error {
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

	return c.JSON(record)
}

func (handler *Handler) GetTrackingRange(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fromDate, err := services.ValidateTrackingDate(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	toDate, err := services.ValidateTrackingDate(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if toDate < fromDate {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	records, err := handler.trackingService.FetchRange(user.ID, fromDate, toDate)
	if err != nil {
		log.Printf("fetch tracking range failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.JSON(records)
}
