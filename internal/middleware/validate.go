package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const ctxValidated = "validated_body"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the field-level detail list to the HTTP error
// handler, which renders it as a 400 with a details array.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string { return "Validation Failed" }

// ValidateBody binds and validates the request body as T, then stores it in
// the echo context for the handler. Handlers behind it read the typed body via
// Validated and never see raw payloads.
func ValidateBody[T any]() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body := new(T)
			if err := c.Bind(body); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON format")
			}
			if err := validate.Struct(body); err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					details := make([]FieldError, 0, len(verrs))
					for _, fe := range verrs {
						details = append(details, FieldError{
							Field:   fe.Field(),
							Message: fieldMessage(fe),
						})
					}
					return &ValidationError{Details: details}
				}
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON format")
			}
			c.Set(ctxValidated, body)
			return next(c)
		}
	}
}

func Validated[T any](c echo.Context) *T {
	return c.Get(ctxValidated).(*T)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
