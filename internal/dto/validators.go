package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var referencePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RegisterCustomValidators installs the binding rules used by request DTOs.
// Must run once at startup before the router serves traffic.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("reference", func(fl validator.FieldLevel) bool {
		return referencePattern.MatchString(fl.Field().String())
	})
}
