package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/google/uuid"

	"fullsco_api/config"
	basehdl "fullsco_api/internal/api/base/handler"
	basesvc "fullsco_api/internal/api/base/service"
	catalogrouter "fullsco_api/internal/api/catalog/router"
	contentrouter "fullsco_api/internal/api/content/router"
	mediarouter "fullsco_api/internal/api/media/router"
	menurouter "fullsco_api/internal/api/menu/router"
	apirouter "fullsco_api/internal/api/router"
	settingsrouter "fullsco_api/internal/api/settings/router"
	subscriberrouter "fullsco_api/internal/api/subscriber/router"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/metrics"
)

// skipOperational matches requests that rate limiting and recovery logging leave alone
func skipOperational(c fiber.Ctx) bool {
	return c.Path() == "/health" ||
		c.Path() == "/api/v1/health" ||
		c.Path() == "/metrics" ||
		c.Method() == fiber.MethodOptions
}

// corsOrigins splits CORS_ORIGINS; "*" allows every origin
func corsOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "*" || raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

// InitFiberApp builds the app: middleware stack, /metrics, /uploads and every domain's routes
func InitFiberApp(cfg *config.Configuration, stores *basesvc.StoreProvider) (*fiber.App, error) {
	log := logger.GetAppLogger()

	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}
	app := fiber.New(fiber.Config{
		AppName:       "FullSco API",
		ServerHeader:  "FullSco API",
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       bodyLimit * 1024 * 1024,
		ReadBufferSize:  8192,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: basehdl.ErrorHandler,
	})

	// 1. Request ID, read back by the logger helpers
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. CORS, before anything that may reject a preflight
	origins := corsOrigins(cfg.CORS_Origins)
	allowCredentials := cfg.CORS_AllowCredentials
	if allowCredentials && len(origins) == 1 && origins[0] == "*" {
		log.Warn("CORS_ALLOW_CREDENTIALS ignored with wildcard origins")
		allowCredentials = false
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch,
			fiber.MethodDelete, fiber.MethodHead, fiber.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: allowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security headers. Uploaded media is embedded by other origins.
	app.Use(helmet.New(helmet.Config{
		XFrameOptions:             "DENY",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		CrossOriginResourcePolicy: "cross-origin",
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))

	// 4. Rate limiting per client IP
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:          cfg.RateLimit_Max,
			Expiration:   time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string { return c.IP() },
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.JSONResponse(c, common.StatusTooManyRequests, basehdl.Response{
					Message: common.MsgTooManyRequests,
					Code:    common.ErrCodeBusinessOperation.Code,
				})
			},
			Next: skipOperational,
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 5. Recover; the error handler answers with the 500 envelope
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			logger.GetErrorLogger().WithFields(map[string]any{
				"request_id": logger.RequestID(c),
				"method":     c.Method(),
				"path":       c.Path(),
				"panic":      e,
			}).Error("Panic recovered")
		},
	}))

	// 6. Metrics
	m := metrics.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())

	// 7. Uploaded files
	uploadDir := config.ResolvePath(cfg.UploadDir)
	app.Get("/uploads*", static.New(uploadDir, static.Config{
		MaxAge: 7 * 24 * 60 * 60,
	}))

	err := apirouter.SetupRoutes(app, apirouter.Deps{
		Stores:         stores,
		RequestTimeout: cfg.RequestTimeout,
		UploadDir:      uploadDir,
		Environment:    cfg.Environment,
	},
		catalogrouter.Register,
		contentrouter.Register,
		menurouter.Register,
		settingsrouter.Register,
		subscriberrouter.Register,
		mediarouter.Register,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}
