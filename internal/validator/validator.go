// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// periodRegex matches calendar-month keys like "2025-04".
var periodRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period", validatePeriod)
		_ = v.RegisterValidation("activity_action", validateActivityAction)
	}
}

func validatePeriod(fl validator.FieldLevel) bool {
	return periodRegex.MatchString(fl.Field().String())
}

func validateActivityAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "created", "updated", "deleted", "rolled_over":
		return true
	}
	return false
}
