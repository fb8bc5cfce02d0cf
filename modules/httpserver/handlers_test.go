package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"

	"github.com/example/web-calc-demo/modules/analytics"
	"github.com/example/web-calc-demo/modules/calculator"
)

const testBaseURL = "http://192.0.2.1:8080/"

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any) {}
func (m *mockLogger) Info(_ string, _ ...any)  {}
func (m *mockLogger) Warn(_ string, _ ...any)  {}
func (m *mockLogger) Error(_ string, _ ...any) {}
func (m *mockLogger) With(_ ...any) types.Logger {
	return m
}
func (m *mockLogger) WithModule(_ string) types.Logger {
	return m
}
func (m *mockLogger) WithError(_ error) types.Logger {
	return m
}

func newMockLogger() types.Logger {
	return &mockLogger{}
}

// newTestApp builds a Fiber app with the production route layout but
// without listening on a socket.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	calcModule := calculator.NewModule(newMockLogger())
	if err := calcModule.Start(context.Background()); err != nil {
		t.Fatalf("failed to start calculator module: %v", err)
	}
	analyticsModule := analytics.NewModule(newMockLogger())

	h := NewHandlers(calcModule, analyticsModule, testBaseURL)

	app := fiber.New()
	app.Get("/health", h.HealthCheck)
	app.Get("/api/v1/analytics", h.GetAnalytics)
	app.Get("/*", h.Calculate)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (int, string, http.Header) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test(%q) error = %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, string(body), resp.Header
}

func TestCalculate_Resolved(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		path string
		body string
	}{
		{"/multiply/3/5", "15"},
		{"/add/23/42", "65"},
		{"/subtract/23/42", "-19"},
		{"/divide/22/11", "2"},
		{"/divide/5/2", "2.5"},
		{"/add/-1.5/0.5", "-1"},
		// Suffix-match quirk: leading segments are ignored.
		{"/foo/add/3/5", "8"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			status, body, headers := doGet(t, app, tc.path)

			if status != http.StatusOK {
				t.Errorf("GET %s status = %d, want 200", tc.path, status)
			}
			if body != tc.body {
				t.Errorf("GET %s body = %q, want %q", tc.path, body, tc.body)
			}
			if ct := headers.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("GET %s Content-Type = %q, want text/html", tc.path, ct)
			}
		})
	}
}

func TestCalculate_DivisionByZero(t *testing.T) {
	app := newTestApp(t)

	status, body, _ := doGet(t, app, "/divide/6/0")

	if status != http.StatusBadRequest {
		t.Errorf("GET /divide/6/0 status = %d, want 400", status)
	}
	if !strings.Contains(body, "ZeroDivision") {
		t.Errorf("GET /divide/6/0 body = %q, want it to contain 'ZeroDivision'", body)
	}
	if !strings.Contains(body, "400 Bad Request") {
		t.Errorf("GET /divide/6/0 body = %q, want it to contain '400 Bad Request'", body)
	}
}

func TestCalculate_UsagePage(t *testing.T) {
	app := newTestApp(t)

	paths := []string{"/", "/foobar", "/add/onlyone", "/add/foo/3", "/modulo/3/2"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			status, body, _ := doGet(t, app, path)

			if status != http.StatusOK {
				t.Errorf("GET %s status = %d, want 200", path, status)
			}
			for _, op := range []string{"add", "subtract", "multiply", "divide"} {
				if !strings.Contains(body, "<li>"+op+"</li>") {
					t.Errorf("GET %s usage page missing operation %q", path, op)
				}
			}
			if !strings.Contains(body, testBaseURL+"action/value1/value2") {
				t.Errorf("GET %s usage page missing URL shape with base URL", path)
			}
			if !strings.Contains(body, testBaseURL+"add/3/2") {
				t.Errorf("GET %s usage page missing worked example", path)
			}
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	app := newTestApp(t)

	firstStatus, firstBody, _ := doGet(t, app, "/divide/22/11")
	for i := 0; i < 5; i++ {
		status, body, _ := doGet(t, app, "/divide/22/11")
		if status != firstStatus || body != firstBody {
			t.Fatalf("repeat request returned (%d, %q), want (%d, %q)",
				status, body, firstStatus, firstBody)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	status, body, _ := doGet(t, app, "/health")

	if status != http.StatusOK {
		t.Errorf("GET /health status = %d, want 200", status)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("failed to unmarshal health response: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("health status = %q, want 'healthy'", payload["status"])
	}
}

func TestGetAnalytics(t *testing.T) {
	app := newTestApp(t)

	status, body, _ := doGet(t, app, "/api/v1/analytics")

	if status != http.StatusOK {
		t.Errorf("GET /api/v1/analytics status = %d, want 200", status)
	}

	var summary analytics.Summary
	if err := json.Unmarshal([]byte(body), &summary); err != nil {
		t.Fatalf("failed to unmarshal analytics response: %v", err)
	}
	if summary.TotalResolved != 0 {
		t.Errorf("TotalResolved = %d, want 0 for a fresh store", summary.TotalResolved)
	}
}
