package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			_, err := styleprops.ParseDirection(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("handler_table", func(fl validator.FieldLevel) bool {
			_, ok := styleprops.HandlersByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}
