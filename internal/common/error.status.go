// Package common holds the error model and status constants shared by every layer.
package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status codes used by the API
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Response messages
const (
	MsgSuccess         = "Operation completed successfully"
	MsgCreated         = "Created successfully"
	MsgUpdated         = "Updated successfully"
	MsgDeleted         = "Deleted successfully"
	MsgNotFound        = "Resource not found"
	MsgConflict        = "Resource already exists"
	MsgInternalError   = "Internal server error"
	MsgValidationError = "Invalid input data"
	MsgInvalidFormat   = "Invalid data format"
	MsgInvalidID       = "Invalid identifier"
	MsgTooManyRequests = "Too many requests, please try again later"
)

// ErrorCode describes an error in a hierarchical catalogue
type ErrorCode struct {
	Code        string // e.g. VAL_001
	Category    string // e.g. Validation
	SubCategory string // e.g. Input
	Description string
}

var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Input data failed validation",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Malformed data or identifier",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Generic database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Query returned no usable result",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessConflict = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "Conflict",
		Description: "Unique constraint would be violated",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Operation rejected",
	}
)

// Error is the structured error every layer returns
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

// Error returns the message
func (e *Error) Error() string {
	return e.Message
}

// Is matches on code and status so wrapped copies with a different message still compare equal
// to the sentinel errors below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.StatusCode == t.StatusCode
}

// NewError builds a new *Error
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Sentinel errors
var (
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrInvalidID     = NewError(ErrCodeValidationFormat, MsgInvalidID, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Required field is missing", StatusBadRequest, nil)

	ErrNotFound  = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate = NewError(ErrCodeBusinessConflict, MsgConflict, StatusConflict, nil)
	ErrInternal  = NewError(ErrCodeInternalServer, MsgInternalError, StatusInternalServerError, nil)
)

// FieldError is one per-field validation problem
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// NewValidationError returns a 400 error carrying the field list in Details
func NewValidationError(message string, fields ...FieldError) error {
	if message == "" {
		message = MsgValidationError
	}
	return NewError(ErrCodeValidationInput, message, StatusBadRequest, fields)
}

// NewNotFoundError returns a 404 naming the missing resource
func NewNotFoundError(resource string) error {
	return NewError(ErrCodeDatabaseQuery, resource+" not found", StatusNotFound, nil)
}

// NewConflictError returns a 409 naming the colliding field
func NewConflictError(resource, field string, value any) error {
	return NewError(ErrCodeBusinessConflict, resource+" with this "+field+" already exists", StatusConflict, map[string]any{
		"field": field,
		"value": value,
	})
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// FieldErrors extracts the field list from a validation error, or nil
func FieldErrors(err error) []FieldError {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	fields, _ := e.Details.([]FieldError)
	return fields
}

// ConvertMongoError maps driver errors onto the error model
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeBusinessConflict, MsgConflict, StatusConflict, nil)
	}

	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, err)
	}

	return NewError(ErrCodeDatabase, MsgInternalError, StatusInternalServerError, err)
}
