package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/amal/internal/db"
	"github.com/terraincognita07/amal/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.trackingService = services.NewTrackingService(handler.repositories.Tracking)
	return handler
}
