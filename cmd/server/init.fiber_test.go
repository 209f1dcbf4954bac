package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullsco_api/config"
	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func testConfig(t *testing.T) *config.Configuration {
	t.Helper()
	return &config.Configuration{
		Environment:    "test",
		DatabaseDriver: "memory",
		CORS_Origins:   "*",
		RequestTimeout: 5 * time.Second,
		BodyLimitMB:    1,
		UploadDir:      t.TempDir(),
	}
}

func newTestApp(t *testing.T, cfg *config.Configuration) *fiber.App {
	t.Helper()
	app, err := InitFiberApp(cfg, basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthAndHeaders(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	resp := get(t, app, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "memory", body["database"])
}

func TestDomainsAreMounted(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	for _, path := range []string{
		"/api/v1/scholarships",
		"/api/v1/categories",
		"/api/v1/pages",
		"/api/v1/menus",
		"/api/v1/site-settings",
		"/api/v1/seo-settings",
		"/api/v1/subscribers",
		"/api/v1/media",
		"/api/v1/statistics",
	} {
		assert.Equal(t, http.StatusOK, get(t, app, path).StatusCode, path)
	}

	resp := get(t, app, "/api/v1/nothing-here")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	get(t, app, "/api/v1/pages")

	resp := get(t, app, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `route="/api/v1/pages`)
}

func TestUploadsAreServed(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.UploadDir, "hello.txt"), []byte("hello"), 0o644))
	app := newTestApp(t, cfg)

	resp := get(t, app, "/uploads/hello.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit_Enabled = true
	cfg.RateLimit_Max = 2
	cfg.RateLimit_Window = 60
	app := newTestApp(t, cfg)

	assert.Equal(t, http.StatusOK, get(t, app, "/api/v1/pages").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, app, "/api/v1/pages").StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, get(t, app, "/api/v1/pages").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, app, "/health").StatusCode, "health is never limited")
}

func TestCorsOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, corsOrigins("*"))
	assert.Equal(t, []string{"*"}, corsOrigins(""))
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, corsOrigins("https://a.com, https://b.com"))
}

func TestRecoveredPanicIsLogged(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	app.Get("/boom", func(c fiber.Ctx) error {
		panic("boom")
	})

	errLog := logger.GetErrorLogger()
	var buf bytes.Buffer
	out := errLog.Out
	errLog.SetOutput(&buf)
	t.Cleanup(func() { errLog.SetOutput(out) })

	resp := get(t, app, "/boom")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "Panic recovered")
	assert.Contains(t, buf.String(), "/boom")
}
