package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/amal/internal/models"
)

var (
	ErrTrackingDateInvalid   = errors.New("tracking date invalid")
	ErrScriptureVerseInvalid = errors.New("scripture verse invalid")
)

// TrackingUpdate carries only the fields the caller actually supplied. A nil
// field is "omitted" and keeps the stored value; a non-nil zero value ("0",
// false, empty string) overwrites it.
type TrackingUpdate struct {
	Fasting          *models.BitBool
	Fajr             *models.BitBool
	Dhuhr            *models.BitBool
	Asr              *models.BitBool
	Maghrib          *models.BitBool
	Isha             *models.BitBool
	ScriptureChapter *string
	ScriptureVerse   *int
	Notes            *string
}

// Validate checks the supplied fields only; omitted fields have nothing to
// check. The scripture position is a non-negative verse number.
func (update TrackingUpdate) Validate() error {
	if update.ScriptureVerse != nil && *update.ScriptureVerse < 0 {
		return ErrScriptureVerseInvalid
	}
	return nil
}

func (update TrackingUpdate) applyTo(record *models.TrackingRecord) {
	if update.Fasting != nil {
		record.Fasting = *update.Fasting
	}
	if update.Fajr != nil {
		record.Fajr = *update.Fajr
	}
	if update.Dhuhr != nil {
		record.Dhuhr = *update.Dhuhr
	}
	if update.Asr != nil {
		record.Asr = *update.Asr
	}
	if update.Maghrib != nil {
		record.Maghrib = *update.Maghrib
	}
	if update.Isha != nil {
		record.Isha = *update.Isha
	}
	if update.ScriptureChapter != nil {
		record.ScriptureChapter = *update.ScriptureChapter
	}
	if update.ScriptureVerse != nil {
		record.ScriptureVerse = *update.ScriptureVerse
	}
	if update.Notes != nil {
		record.Notes = *update.Notes
	}
}

// ValidateTrackingDate accepts exactly the YYYY-MM-DD calendar-day form and
// returns it canonicalized. No timezone is attached to tracking dates.
func ValidateTrackingDate(raw string) (string, error) {
	date := strings.TrimSpace(raw)
	if date == "" {
		return "", ErrTrackingDateInvalid
	}
	parsed, err := time.Parse(models.TrackingDateLayout, date)
	if err != nil {
		return "", ErrTrackingDateInvalid
	}
	canonical := parsed.Format(models.TrackingDateLayout)
	if canonical != date {
		return "", ErrTrackingDateInvalid
	}
	return canonical, nil
}
