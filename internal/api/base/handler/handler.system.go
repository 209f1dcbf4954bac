package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/common"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	*BaseHandler
	stores      *basesvc.StoreProvider
	environment string
}

// NewSystemHandler returns a handler reporting on stores
func NewSystemHandler(stores *basesvc.StoreProvider, environment string) *SystemHandler {
	return &SystemHandler{
		BaseHandler: NewBaseHandler("system", "", 2*time.Second),
		stores:      stores,
		environment: environment,
	}
}

// HandleHealth reports liveness and database reachability. The body is not wrapped in the
// envelope so probes can read status directly.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.Timeout)
	defer cancel()

	health := fiber.Map{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
		"database":    "memory",
	}

	if h.stores != nil && !h.stores.IsMemory() {
		if err := h.stores.Ping(ctx); err != nil {
			h.Log(c).WithError(err).Warn("Health check: database unreachable")
			health["status"] = "DEGRADED"
			health["database"] = "unreachable"
			return JSONResponse(c, common.StatusServiceUnavailable, health)
		}
		health["database"] = "ok"
	}

	return JSONResponse(c, common.StatusOK, health)
}
