// Package parser decodes extractor element tables into typed ladder elements.
// It handles attribute normalization, row validation and skipping of bad rows.
package parser

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ladderscope/core/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("element_kind", func(fl validator.FieldLevel) bool {
		return models.Kind(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
}

func validateRow(raw *models.RawElement) error {
	if raw == nil {
		return errors.New("row cannot be nil")
	}
	if err := validate.Struct(raw); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "element_kind":
			return fmt.Errorf("%s: unknown element kind %q", field, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
