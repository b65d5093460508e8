package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.AuthRequired, handler.Logout)
	app.Get("/me", handler.AuthRequired, handler.Me)

	app.Get("/tracking", handler.AuthRequired, handler.GetTracking)
	app.Post("/tracking", handler.AuthRequired, handler.UpsertTracking)
	app.Get("/tracking/range", handler.AuthRequired, handler.GetTrackingRange)

	app.Get("/stats/summary", handler.AuthRequired, handler.GetStatsSummary)
}
