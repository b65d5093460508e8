package services

import (
	"errors"

	"github.com/terraincognita07/amal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords;
// callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// timingPadHash is a throwaway bcrypt hash compared against when the username
// lookup misses, so that path costs the same as a real password check.
const timingPadHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthUserRepository interface {
	FindByUsername(username string) (models.User, bool, error)
	FindByID(userID string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// VerifyCredentials returns the user on a correct username/password pair and
// ErrInvalidCredentials otherwise.
func (service *AuthService) VerifyCredentials(username string, password string) (models.User, error) {
	user, found, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		_ = bcrypt.CompareHashAndPassword([]byte(timingPadHash), []byte(password))
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByID(userID string) (models.User, error) {
	return service.users.FindByID(userID)
}
