package models

import "time"

// TrackingDateLayout is the only accepted shape for the tracking key's date
// part. Dates are plain calendar-day strings with no timezone attached;
// callers own canonicalization.
const TrackingDateLayout = "2006-01-02"

// TrackingRecord holds one day of observance for one user, keyed by
// (user_id, date). Absence of a row means the all-zero default record; rows
// appear on first upsert and are mutated in place afterwards.
type TrackingRecord struct {
	UserID           string    `gorm:"primaryKey" json:"user_id"`
	Date             string    `gorm:"primaryKey" json:"date"`
	Fasting          BitBool   `gorm:"not null;default:0" json:"fasting"`
	Fajr             BitBool   `gorm:"not null;default:0" json:"fajr"`
	Dhuhr            BitBool   `gorm:"not null;default:0" json:"dhuhr"`
	Asr              BitBool   `gorm:"not null;default:0" json:"asr"`
	Maghrib          BitBool   `gorm:"not null;default:0" json:"maghrib"`
	Isha             BitBool   `gorm:"not null;default:0" json:"isha"`
	ScriptureChapter string    `gorm:"not null;default:''" json:"scripture_chapter"`
	ScriptureVerse   int       `gorm:"not null;default:0" json:"scripture_verse"`
	Notes            string    `gorm:"not null;default:''" json:"notes"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (TrackingRecord) TableName() string {
	return "daily_tracking"
}

// DefaultTrackingRecord is the implicit record returned for a key with no
// stored row.
func DefaultTrackingRecord(userID string, date string) TrackingRecord {
	return TrackingRecord{UserID: userID, Date: date}
}

// ObservanceFlags lists the six daily observances in display order.
func (record TrackingRecord) ObservanceFlags() []BitBool {
	return []BitBool{record.Fasting, record.Fajr, record.Dhuhr, record.Asr, record.Maghrib, record.Isha}
}
