package db

import (
	"github.com/terraincognita07/amal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackingRepository struct {
	database *gorm.DB
}

func NewTrackingRepository(database *gorm.DB) *TrackingRepository {
	return &TrackingRepository{database: database}
}

func (repo *TrackingRepository) FindByUserAndDate(userID string, date string) (models.TrackingRecord, bool, error) {
	var record models.TrackingRecord
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.TrackingRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TrackingRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *TrackingRepository) ListByUserRange(userID string, fromDate string, toDate string) ([]models.TrackingRecord, error) {
	records := make([]models.TrackingRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, fromDate, toDate).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert is a single atomic insert-or-update on the (user_id, date) key.
// Concurrent writers on one key never see a duplicate-key error; the final
// row is whichever write commits last.
func (repo *TrackingRepository) Upsert(record *models.TrackingRecord) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fasting", "fajr", "dhuhr", "asr", "maghrib", "isha",
			"scripture_chapter", "scripture_verse", "notes", "updated_at",
		}),
	}).Create(record).Error
}
