package services

import (
	"errors"
	"testing"
)

func TestValidateTrackingDateAcceptsCalendarDays(t *testing.T) {
	t.Parallel()

	date, err := ValidateTrackingDate(" 2025-03-10 ")
	if err != nil {
		t.Fatalf("validate date: %v", err)
	}
	if date != "2025-03-10" {
		t.Fatalf("expected canonical date, got %q", date)
	}
}

func TestValidateTrackingDateRejectsMalformedValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"today",
		"2025-3-10",
		"10-03-2025",
		"2025-03-10T00:00:00Z",
		"2025-13-01",
	} {
		if _, err := ValidateTrackingDate(raw); !errors.Is(err, ErrTrackingDateInvalid) {
			t.Fatalf("expected %q rejected, got %v", raw, err)
		}
	}
}
