// Package validator is the single request-validation boundary: every write
// request is a typed DTO validated here before a service touches the store.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/magickal-mortalz/coven-service/internal/models"
)

// Validator wraps go-playground struct validation plus the coven's business
// rules (degree ladder, module statuses, grimoire categories).
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// Catalog memberships are data, not tags, so they get custom rules.
	_ = validate.RegisterValidation("grimoire_category", func(fl validator.FieldLevel) bool {
		return models.ValidGrimoireCategory(fl.Field().String())
	})
	_ = validate.RegisterValidation("module_status", func(fl validator.FieldLevel) bool {
		return models.ModuleStatus(fl.Field().String()).Valid()
	})

	return &Validator{validate: validate}
}

// ValidationError describes one failed field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a non-nil slice when validation failed.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate runs struct validation and converts failures into field errors.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	result := make(ValidationErrors, 0, len(invalid))
	for _, fe := range invalid {
		result = append(result, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "grimoire_category":
		return "is not a known grimoire category"
	case "module_status":
		return "is not a known module status"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
