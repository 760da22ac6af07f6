package styleprops

import (
	"errors"
	"fmt"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	// ErrMissingBase is reported when a responsive mapping has no usable "base" entry.
	ErrMissingBase = errors.New("responsive value has no base entry")
	// ErrUnsupportedValue is reported when a converter receives a value outside its domain.
	ErrUnsupportedValue = errors.New("unsupported value")
)

func unsupported(converter string, want string, got Value) error {
	return fmt.Errorf("%w: %s expects %s, got %s", ErrUnsupportedValue, converter, want, got.Kind())
}

func contractError(property string, err error) error {
	return apperrors.NewContractError(property, err.Error(), err)
}
