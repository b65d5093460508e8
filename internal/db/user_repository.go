package db

import (
	"errors"
	"strings"

	"github.com/terraincognita07/amal/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateUsername reports a registration attempt for a username that is
// already taken. The UNIQUE constraint is the source of truth, so two
// concurrent registrations of one username yield exactly one success.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// FindByUsername is an exact byte-wise match: usernames are stored in a TEXT
// column with SQLite's default BINARY collation, so lookups are
// case-sensitive.
func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("username = ?", username).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	if err := repo.database.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
