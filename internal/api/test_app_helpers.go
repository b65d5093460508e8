package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/amal/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "amal-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	return request
}

func registerTestUser(t *testing.T, app *fiber.App, username string, password string, name string) {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"username": username,
		"password": password,
		"name":     name,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected register status 200, got %d", response.StatusCode)
	}
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}
