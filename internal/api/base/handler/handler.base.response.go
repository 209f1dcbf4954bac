package basehdl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data"`
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Errors  []common.FieldError `json:"errors,omitempty"`
}

// JSONResponse writes body with Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, body any) error {
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(body)
}

// SafeHandler runs handler and turns a panic into a 500 response
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.Log(c).WithFields(map[string]any{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic in handler")
			err = h.HandleResponse(c, nil, common.ErrInternal)
		}
	}()
	return handler()
}

// Success writes data with the given status and message
func (h *BaseHandler) Success(c fiber.Ctx, status int, message string, data any) error {
	if message == "" {
		message = common.MsgSuccess
	}
	return JSONResponse(c, status, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// HandleResponse writes data as a 200, or err mapped to its status. Internal failures are
// logged with their cause and answered with a generic message.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data any, err error) error {
	if err == nil {
		return h.Success(c, common.StatusOK, common.MsgSuccess, data)
	}
	return h.Error(c, err)
}

// Error writes the envelope for err
func (h *BaseHandler) Error(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		if errors.Is(err, context.DeadlineExceeded) {
			appErr = common.NewError(common.ErrCodeDatabaseConnection, "Request timed out", common.StatusServiceUnavailable, err).(*common.Error)
		} else {
			appErr = common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err).(*common.Error)
		}
	}

	if appErr.StatusCode >= common.StatusInternalServerError {
		h.Log(c).WithError(err).WithField("details", appErr.Details).Error(appErr.Message)
		message := appErr.Message
		if appErr.StatusCode == common.StatusInternalServerError {
			message = common.MsgInternalError
		}
		return JSONResponse(c, appErr.StatusCode, Response{
			Message: message,
			Code:    appErr.Code.Code,
		})
	}

	h.Log(c).WithField("code", appErr.Code.Code).Debug(appErr.Message)
	return JSONResponse(c, appErr.StatusCode, Response{
		Message: appErr.Message,
		Code:    appErr.Code.Code,
		Errors:  common.FieldErrors(appErr),
	})
}

// ErrorHandler is the fiber.Config ErrorHandler: it renders framework errors (unknown route,
// body too large, ...) with the same envelope
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JSONResponse(c, fe.Code, Response{
			Message: fe.Message,
		})
	}
	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	return JSONResponse(c, common.StatusInternalServerError, Response{
		Message: common.MsgInternalError,
		Code:    common.ErrCodeInternalServer.Code,
	})
}
