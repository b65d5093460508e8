package api

import "github.com/terraincognita07/amal/internal/models"

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

// trackingPayload distinguishes omitted fields from explicit zero values:
// nil pointers leave the stored field untouched, non-nil zeros overwrite it.
// Any client-supplied user_id is ignored; the key always comes from the
// session.
type trackingPayload struct {
	Date             string          `json:"date" form:"date"`
	Fasting          *models.BitBool `json:"fasting" form:"fasting"`
	Fajr             *models.BitBool `json:"fajr" form:"fajr"`
	Dhuhr            *models.BitBool `json:"dhuhr" form:"dhuhr"`
	Asr              *models.BitBool `json:"asr" form:"asr"`
	Maghrib          *models.BitBool `json:"maghrib" form:"maghrib"`
	Isha             *models.BitBool `json:"isha" form:"isha"`
	ScriptureChapter *string         `json:"scripture_chapter" form:"scripture_chapter"`
	ScriptureVerse   *int            `json:"scripture_verse" form:"scripture_verse"`
	Notes            *string         `json:"notes" form:"notes"`
}
