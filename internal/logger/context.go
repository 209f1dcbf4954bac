package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// ContextKey is the type of the context keys read by WithContext
type ContextKey string

const (
	// RequestIDKey carries the request id through a context.Context
	RequestIDKey ContextKey = "requestID"
	// ModuleKey carries the module name through a context.Context
	ModuleKey ContextKey = "module"
)

// WithContext returns an entry enriched with the ids stored in ctx
func WithContext(ctx context.Context) *logrus.Entry {
	entry := GetAppLogger().WithContext(ctx)
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		entry = entry.WithField("request_id", requestID)
	}
	if module := ctx.Value(ModuleKey); module != nil {
		entry = entry.WithField("module", module)
	}
	return entry
}

// RequestID returns the id assigned by the requestid middleware, falling back to the header
func RequestID(c fiber.Ctx) string {
	if rid := requestid.FromContext(c); rid != "" {
		return rid
	}
	if rid := c.Get(fiber.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// WithRequest returns an entry carrying the request id, method, path and client IP
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})
	if rid := RequestID(c); rid != "" {
		entry = entry.WithField("request_id", rid)
	}
	return entry
}

// WithFields returns an app entry with extra fields
func WithFields(fields map[string]any) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError returns an app entry with err attached
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// WithModule tags the entry with a module name (catalog, menu, media, ...)
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection tags the entry with a MongoDB collection name
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}

// WithRequestInfo combines WithRequest with optional module and collection tags
func WithRequestInfo(c fiber.Ctx, module, collection string) *logrus.Entry {
	entry := WithRequest(c)
	if module != "" {
		entry = entry.WithField("module", module)
	}
	if collection != "" {
		entry = entry.WithField("collection", collection)
	}
	return entry
}
