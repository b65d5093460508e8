package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/amal/internal/services"
)

func (handler *Handler) UpsertTracking(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := trackingPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	date, err := services.ValidateTrackingDate(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date is required in the body")
	}

	update := services.TrackingUpdate{
		Fasting:          payload.Fasting,
		Fajr:             payload.Fajr,
		Dhuhr:            payload.Dhuhr,
		Asr:              payload.Asr,
		Maghrib:          payload.Maghrib,
		Isha:             payload.Isha,
		ScriptureChapter: payload.ScriptureChapter,
		ScriptureVerse:   payload.ScriptureVerse,
		Notes:            payload.Notes,
	}

	if _, err := handler.trackingService.ApplyUpdate(user.ID, date, update); err != nil {
		if errors.Is(err, services.ErrScriptureVerseInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid scripture verse")
		}
		log.Printf("upsert tracking record failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.JSON(fiber.Map{"success": true})
}
