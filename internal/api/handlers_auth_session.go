package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/amal/internal/db"
	"github.com/terraincognita07/amal/internal/models"
	"github.com/terraincognita07/amal/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "all fields are required")
	}

	username, password, displayName, err := services.NormalizeRegistrationInput(input.Username, input.Password, input.Name)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "all fields are required")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(passwordHash),
		DisplayName:  displayName,
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return apiError(c, fiber.StatusBadRequest, "username already exists")
		}
		log.Printf("register user failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}

	username, password, err := services.NormalizeCredentialsInput(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}

	user, err := handler.authService.VerifyCredentials(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		log.Printf("login failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	token, err := handler.setAuthCookie(c, &user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
