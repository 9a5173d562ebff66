package validation

import (
	"fmt"
	"strings"

	"github.com/avelline/tally/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern: define a request struct with validator tags
// (`validate:"required"`) and implement Validate() as
// validation.Struct(r).
type Validatable interface {
	Validate() error
}

var validate = validator.New()

// Struct runs struct-tag validation on v. Request types use it to
// implement Validatable.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params and body.
//  2. payload.Validate() applies the validation rules.
//  3. Failures become a 400 *errs.HTTPError with field-level errors.
//
// payload must be a pointer so Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request payload", false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error(), []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(fieldErr.Field()),
			Error: messageForTag(fieldErr),
		})
	}
	return "Validation failed", fieldErrors
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed validation rule: %s", fieldErr.Tag())
	}
}
