package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds rules shared by the request DTOs.
func registerCustomRules(v *validator.Validate) {
	// notblank: required, but whitespace-only strings also fail. Contact
	// forms routinely arrive padded with spaces.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}
