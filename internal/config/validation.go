package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Validate checks settings against their struct tags.
func Validate(s *Settings) error {
	if s == nil {
		return apperrors.NewValidationError("settings", "settings are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(s))
}

// convertValidationError normalizes validator errors into stylekit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := ve.Namespace()
		if idx := indexAfterRoot(field); idx >= 0 {
			field = field[idx:]
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("settings", err.Error(), err)
}

// indexAfterRoot strips the "Settings." prefix of a validator namespace.
func indexAfterRoot(ns string) int {
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return i + 1
		}
	}
	return -1
}
