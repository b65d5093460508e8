package services

import (
	"math"

	"github.com/terraincognita07/amal/internal/models"
)

// DailyProgress counts completed observances (fasting plus the five prayers)
// and the rounded completion percentage of the day.
func DailyProgress(record models.TrackingRecord) (int, int) {
	flags := record.ObservanceFlags()
	completed := 0
	for _, flag := range flags {
		if flag.Bool() {
			completed++
		}
	}
	percent := int(math.Round(float64(completed) / float64(len(flags)) * 100))
	return completed, percent
}
