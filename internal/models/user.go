package models

import "time"

// User rows are created at registration and are immutable afterwards; no
// exposed operation updates or deletes them.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DisplayName  string    `gorm:"not null" json:"display_name"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
}
