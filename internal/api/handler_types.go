package api

import (
	"time"

	"github.com/terraincognita07/amal/internal/db"
	"github.com/terraincognita07/amal/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	repositories    *db.Repositories
	authService     *services.AuthService
	trackingService *services.TrackingService
}

const (
	authCookieName      = "amal_auth"
	contextUserKey      = "amal_user"
	defaultAuthTokenTTL = 7 * 24 * time.Hour
)
