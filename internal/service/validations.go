package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/planner"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// HH:MM, zero-padded, 00:00 .. 23:59
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return planner.ValidClock(fl.Field().String())
		})
		// YYYY-MM-DD that is a real calendar date
		validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return planner.ValidDate(fl.Field().String())
		})
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// validateStruct returns ErrValidation joined with every field error, so
// callers can both errors.Is the sentinel and list the details.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errs := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			errs = append(errs, fieldErr)
		}
		return errors.Join(errs...)
	}
	return errors.Join(errorvalues.ErrValidation, err)
}

func validationError(msg string) error {
	return errors.Join(errorvalues.ErrValidation, errors.New(msg))
}
