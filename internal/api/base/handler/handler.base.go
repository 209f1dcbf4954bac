// Package basehdl provides the request plumbing shared by every domain handler:
// body parsing and validation, the response envelope, panic recovery and the generic CRUD handler.
package basehdl

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
)

// DefaultRequestTimeout bounds store calls when no timeout is configured
const DefaultRequestTimeout = 10 * time.Second

// BaseHandler carries what every handler of a module needs
type BaseHandler struct {
	// Module tags log entries, e.g. catalog
	Module string
	// Collection tags log entries with the collection served
	Collection string
	Timeout    time.Duration
}

// NewBaseHandler returns a BaseHandler, falling back to DefaultRequestTimeout
func NewBaseHandler(module, collection string, timeout time.Duration) *BaseHandler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &BaseHandler{
		Module:     module,
		Collection: collection,
		Timeout:    timeout,
	}
}

// Context derives the context store calls run under, carrying the request id
func (h *BaseHandler) Context(c fiber.Ctx) (context.Context, context.CancelFunc) {
	ctx := c.Context()
	if rid := logger.RequestID(c); rid != "" {
		ctx = context.WithValue(ctx, logger.RequestIDKey, rid)
	}
	if h.Module != "" {
		ctx = context.WithValue(ctx, logger.ModuleKey, h.Module)
	}
	return context.WithTimeout(ctx, h.Timeout)
}

// ParseRequestBody decodes the JSON body into input and validates it.
// Numbers are kept as json.Number so untyped payloads do not lose precision.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input any) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewValidationError(common.MsgInvalidFormat, common.FieldError{
			Field:   "body",
			Tag:     "json",
			Message: err.Error(),
		})
	}
	return global.ValidateStruct(input)
}

// Log returns an entry tagged with the request and this handler's module
func (h *BaseHandler) Log(c fiber.Ctx) *logrus.Entry {
	return logger.WithRequestInfo(c, h.Module, h.Collection)
}
