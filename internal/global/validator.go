package global

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"fullsco_api/internal/common"
	"fullsco_api/internal/utility"
)

var validatorOnce sync.Once

// InitValidator creates the shared validator and registers the custom tags. Safe to call more than once.
func InitValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report json names so field errors match the request body
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("no_xss", validateNoXSS)
		_ = v.RegisterValidation("mime", validateMime)
		_ = v.RegisterValidation("date", validateDate)

		// "" passes so an update can clear the field
		v.RegisterAlias("mongodb_or_empty", "eq=|mongodb")
		v.RegisterAlias("date_or_empty", "eq=|date")

		Validate = v
	})
	return Validate
}

// validateSlug accepts only canonical slugs
func validateSlug(fl validator.FieldLevel) bool {
	return utility.IsSlug(fl.Field().String())
}

// validateNoXSS rejects obvious script injection in short text fields
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, pattern := range []string{"<script", "javascript:", "onerror=", "onload=", "<iframe", "<object", "<embed"} {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateMime accepts type/subtype strings such as image/png
func validateMime(fl validator.FieldLevel) bool {
	parts := strings.Split(fl.Field().String(), "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// validateDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates
func validateDate(fl validator.FieldLevel) bool {
	_, err := utility.ParseDate(fl.Field().String())
	return err == nil
}

// ValidateStruct runs the validator and converts failures into a 400 with a field list
func ValidateStruct(input any) error {
	err := InitValidator().Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	fields := make([]common.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, common.FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return common.NewValidationError(common.MsgValidationError, fields...)
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "mongodb":
		return "must be a valid identifier"
	case "mongodb_or_empty":
		return "must be a valid identifier or empty"
	case "slug":
		return "must contain only lowercase letters, digits and single hyphens"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "no_xss":
		return "contains forbidden markup"
	case "mime":
		return "must be a MIME type such as image/png"
	case "date":
		return "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"
	case "date_or_empty":
		return "must be a date (YYYY-MM-DD), an RFC 3339 timestamp or empty"
	case "hexcolor":
		return "must be a hex color"
	case "startswith":
		return fmt.Sprintf("must start with %s", fe.Param())
	default:
		return fmt.Sprintf("failed the '%s' rule", fe.Tag())
	}
}
