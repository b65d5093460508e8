package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/amal/internal/models"
)

// Covers the whole happy path: register, login, read the implicit default
// record, mark fasting done, read the merged state back.
func TestTrackingFlowEndToEnd(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "budi123", "secret", "Budi")
	authCookie := loginAndExtractAuthCookie(t, app, "budi123", "secret")

	request := jsonRequest(t, http.MethodGet, "/tracking?date=2025-03-10", nil)
	request.Header.Set("Cookie", authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("initial read failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on fresh key, got %d", response.StatusCode)
	}

	var initial models.TrackingRecord
	decodeJSONBody(t, response.Body, &initial)
	if initial.UserID == "" || initial.Date != "2025-03-10" {
		t.Fatalf("expected populated key on default record, got %q/%q", initial.UserID, initial.Date)
	}
	if initial.Fasting || initial.Fajr || initial.Dhuhr || initial.Asr || initial.Maghrib || initial.Isha {
		t.Fatal("expected all flags unset on default record")
	}
	if initial.ScriptureVerse != 0 || initial.Notes != "" {
		t.Fatal("expected empty scripture verse and notes on default record")
	}

	writeRequest := jsonRequest(t, http.MethodPost, "/tracking", map[string]any{
		"date":    "2025-03-10",
		"fasting": 1,
	})
	writeRequest.Header.Set("Cookie", authCookie)
	writeResponse, err := app.Test(writeRequest, -1)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	defer writeResponse.Body.Close()
	if writeResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on upsert, got %d", writeResponse.StatusCode)
	}

	result := map[string]bool{}
	decodeJSONBody(t, writeResponse.Body, &result)
	if !result["success"] {
		t.Fatal("expected success response on upsert")
	}

	rereadRequest := jsonRequest(t, http.MethodGet, "/tracking?date=2025-03-10", nil)
	rereadRequest.Header.Set("Cookie", authCookie)
	rereadResponse, err := app.Test(rereadRequest, -1)
	if err != nil {
		t.Fatalf("reread failed: %v", err)
	}
	defer rereadResponse.Body.Close()

	var stored models.TrackingRecord
	decodeJSONBody(t, rereadResponse.Body, &stored)
	if !stored.Fasting {
		t.Fatal("expected fasting persisted")
	}
	if stored.Fajr || stored.Dhuhr || stored.Asr || stored.Maghrib || stored.Isha {
		t.Fatal("expected untouched flags to stay unset")
	}
	if stored.UserID != initial.UserID {
		t.Fatalf("expected record owned by the session user, got %q", stored.UserID)
	}
}
