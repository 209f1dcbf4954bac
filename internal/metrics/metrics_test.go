package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(m *Metrics) *fiber.App {
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/items/:id", func(c fiber.Ctx) error {
		return c.SendString(c.Params("id"))
	})
	app.Get("/broken", func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "conflict")
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	m := New()
	app := newApp(m)

	get(t, app, "/items/1")
	get(t, app, "/items/2")
	get(t, app, "/broken")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/broken", "409")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	app := newApp(m)

	get(t, app, "/items/1")
	resp := get(t, app, "/metrics")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/items/:id",status="200"} 1`)
	assert.Contains(t, string(body), "http_request_duration_seconds")
}
