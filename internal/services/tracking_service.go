package services

import (
	"errors"

	"github.com/terraincognita07/amal/internal/models"
)

var (
	ErrTrackingLoadFailed  = errors.New("load tracking record failed")
	ErrTrackingWriteFailed = errors.New("write tracking record failed")
)

type TrackingRecordRepository interface {
	FindByUserAndDate(userID string, date string) (models.TrackingRecord, bool, error)
	ListByUserRange(userID string, fromDate string, toDate string) ([]models.TrackingRecord, error)
	Upsert(record *models.TrackingRecord) error
}

type TrackingService struct {
	records TrackingRecordRepository
}

func NewTrackingService(records TrackingRecordRepository) *TrackingService {
	return &TrackingService{records: records}
}

// FetchRecord never reports "not found": a key with no stored row yields the
// default all-zero record with user id and date populated.
func (service *TrackingService) FetchRecord(userID string, date string) (models.TrackingRecord, error) {
	record, found, err := service.records.FindByUserAndDate(userID, date)
	if err != nil {
		return models.TrackingRecord{}, ErrTrackingLoadFailed
	}
	if !found {
		return models.DefaultTrackingRecord(userID, date), nil
	}
	return record, nil
}

// ApplyUpdate merges the caller-supplied fields over the current stored state
// (or the default record) and persists the result atomically. The record's
// key always comes from the authenticated request, never from the payload.
func (service *TrackingService) ApplyUpdate(userID string, date string, update TrackingUpdate) (models.TrackingRecord, error) {
	if err := update.Validate(); err != nil {
		return models.TrackingRecord{}, err
	}

	record, err := service.FetchRecord(userID, date)
	if err != nil {
		return models.TrackingRecord{}, err
	}

	update.applyTo(&record)
	record.UserID = userID
	record.Date = date

	if err := service.records.Upsert(&record); err != nil {
		return models.TrackingRecord{}, ErrTrackingWriteFailed
	}
	return record, nil
}

func (service *TrackingService) FetchRange(userID string, fromDate string, toDate string) ([]models.TrackingRecord, error) {
	records, err := service.records.ListByUserRange(userID, fromDate, toDate)
	if err != nil {
		return nil, ErrTrackingLoadFailed
	}
	return records, nil
}
