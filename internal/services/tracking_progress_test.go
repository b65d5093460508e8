package services

import (
	"testing"

	"github.com/terraincognita07/amal/internal/models"
)

func TestDailyProgressCountsObservances(t *testing.T) {
	t.Parallel()

	record := models.DefaultTrackingRecord("user-a", "2025-03-10")
	completed, percent := DailyProgress(record)
	if completed != 0 || percent != 0 {
		t.Fatalf("expected 0/0%% for default record, got %d/%d%%", completed, percent)
	}

	record.Fasting = true
	record.Fajr = true
	record.Maghrib = true
	completed, percent = DailyProgress(record)
	if completed != 3 || percent != 50 {
		t.Fatalf("expected 3/50%%, got %d/%d%%", completed, percent)
	}

	record.Dhuhr = true
	record.Asr = true
	record.Isha = true
	completed, percent = DailyProgress(record)
	if completed != 6 || percent != 100 {
		t.Fatalf("expected 6/100%%, got %d/%d%%", completed, percent)
	}
}

func TestDailyProgressIgnoresScriptureAndNotes(t *testing.T) {
	t.Parallel()

	record := models.DefaultTrackingRecord("user-a", "2025-03-10")
	record.ScriptureChapter = "Al-Baqarah"
	record.ScriptureVerse = 255
	record.Notes = "tarawih at the mosque"

	completed, percent := DailyProgress(record)
	if completed != 0 || percent != 0 {
		t.Fatalf("expected scripture and notes excluded, got %d/%d%%", completed, percent)
	}
}
