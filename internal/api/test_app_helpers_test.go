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
	"github.com/jaehyuncho/fitdiary/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "fitdiary-test.db")
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

	handler := NewHandler(database, "test-secret-key", time.UTC, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

// sessionClient replays the device session cookie across requests, the
// way a browser would.
type sessionClient struct {
	app     *fiber.App
	t       *testing.T
	cookies []*http.Cookie
}

func newSessionClient(t *testing.T, app *fiber.App) *sessionClient {
	t.Helper()
	return &sessionClient{app: app, t: t}
}

func (client *sessionClient) do(method string, path string, payload any) *http.Response {
	client.t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			client.t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range client.cookies {
		request.AddCookie(cookie)
	}

	response, err := client.app.Test(request, -1)
	if err != nil {
		client.t.Fatalf("%s %s: %v", method, path, err)
	}
	for _, cookie := range response.Cookies() {
		client.storeCookie(cookie)
	}
	return response
}

func (client *sessionClient) storeCookie(incoming *http.Cookie) {
	for index, cookie := range client.cookies {
		if cookie.Name == incoming.Name {
			client.cookies[index] = incoming
			return
		}
	}
	client.cookies = append(client.cookies, incoming)
}

func decodeJSON[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var value T
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return value
}

func requireStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("status = %d, want %d (body: %s)", response.StatusCode, want, raw)
	}
}

// registerProfile gives the client a session and a bank account so it
// can take part in team activity.
func registerProfile(t *testing.T, client *sessionClient, name string) map[string]any {
	t.Helper()

	response := client.do(http.MethodPut, "/api/profile", map[string]any{
		"name":        name,
		"bankAccount": "110-123-456789",
		"weeklyGoal":  3,
	})
	requireStatus(t, response, http.StatusOK)
	return decodeJSON[map[string]any](t, response)
}
