package config

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	resourceNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.NewVersion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("resource_name", func(fl validator.FieldLevel) bool {
			return resourceNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hexcolor_or_ansi", func(fl validator.FieldLevel) bool {
			return isColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isColor accepts #rgb and #rrggbb hex colors and ANSI palette indices 0-255.
func isColor(s string) bool {
	if len(s) > 0 && s[0] == '#' {
		if len(s) != 4 && len(s) != 7 {
			return false
		}
		_, err := colorful.Hex(s)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
