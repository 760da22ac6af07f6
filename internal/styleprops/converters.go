package styleprops

import (
	"fmt"
	"regexp"
)

// DefaultNamespace prefixes every emitted CSS custom property.
const DefaultNamespace = "spectrum"

// Converter turns a resolved abstract value into a physical one. Returning Null
// omits the physical property.
type Converter func(ns string, v Value) (Value, error)

// ColorType selects the semantic color family a color token falls back to.
type ColorType string

const (
	ColorTypeDefault    ColorType = "default"
	ColorTypeBackground ColorType = "background"
	ColorTypeBorder     ColorType = "border"
	ColorTypeIcon       ColorType = "icon"
	ColorTypeStatus     ColorType = "status"
)

var (
	unitPattern     = regexp.MustCompile(`(%|px|em|rem|vw|vh|auto|cm|mm|in|pt|pc|ex|ch|rem|vmin|vmax|fr)$`)
	functionPattern = regexp.MustCompile(`^\s*\w+\(`)
	tokenPattern    = regexp.MustCompile(`(static-)?size-\d+|single-line-(height|width)`)
)

// DimensionValue converts numbers to pixels, passes unit-bearing strings
// through, rewrites size tokens embedded in function calls such as calc(), and
// turns bare token names into a dimension variable reference.
func DimensionValue(ns string, v Value) (Value, error) {
	if n, ok := v.Num(); ok {
		return String(formatNumber(n) + "px"), nil
	}
	s, ok := v.Str()
	if !ok {
		return Null(), unsupported("dimension", "a number or string", v)
	}
	return String(dimensionString(ns, s)), nil
}

func dimensionString(ns, s string) string {
	if unitPattern.MatchString(s) {
		return s
	}
	if functionPattern.MatchString(s) {
		return tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
			return dimensionToken(ns, token)
		})
	}
	return dimensionToken(ns, s)
}

func dimensionToken(ns, token string) string {
	return fmt.Sprintf("var(--%s-global-dimension-%s, var(--%s-alias-dimension-%s))", ns, token, ns, token)
}

// tokenName returns the token a converter interpolates. Numbers are accepted
// and rendered the way they appear in a declaration.
func tokenName(converter string, v Value) (string, error) {
	switch v.Kind() {
	case KindString, KindNumber:
		return v.String(), nil
	default:
		return "", unsupported(converter, "a string or number", v)
	}
}

func colorToken(ns, value string, kind ColorType) string {
	return fmt.Sprintf("var(--%s-global-color-%s, var(--%s-semantic-%s-color-%s))", ns, value, ns, value, kind)
}

// ColorValue returns a converter that references a global color with a
// semantic fallback of the given type.
func ColorValue(kind ColorType) Converter {
	if kind == "" {
		kind = ColorTypeDefault
	}
	return func(ns string, v Value) (Value, error) {
		s, err := tokenName("color", v)
		if err != nil {
			return Null(), err
		}
		return String(colorToken(ns, s, kind)), nil
	}
}

// BackgroundColorValue prefers the background alias and falls back to the
// background-typed color token.
func BackgroundColorValue(ns string, v Value) (Value, error) {
	s, err := tokenName("background color", v)
	if err != nil {
		return Null(), err
	}
	return String(fmt.Sprintf("var(--%s-alias-background-color-%s, %s)", ns, s, colorToken(ns, s, ColorTypeBackground))), nil
}

// BorderColorValue maps "default" to the plain border alias; any other value
// prefers its border alias and falls back to the border-typed color token.
func BorderColorValue(ns string, v Value) (Value, error) {
	s, err := tokenName("border color", v)
	if err != nil {
		return Null(), err
	}
	if s == "default" {
		return String(fmt.Sprintf("var(--%s-alias-border-color)", ns)), nil
	}
	return String(fmt.Sprintf("var(--%s-alias-border-color-%s, %s)", ns, s, colorToken(ns, s, ColorTypeBorder))), nil
}

// BorderSizeValue references a border size alias.
func BorderSizeValue(ns string, v Value) (Value, error) {
	s, err := tokenName("border size", v)
	if err != nil {
		return Null(), err
	}
	return String(fmt.Sprintf("var(--%s-alias-border-size-%s)", ns, s)), nil
}

// BorderRadiusValue references a border radius alias.
func BorderRadiusValue(ns string, v Value) (Value, error) {
	s, err := tokenName("border radius", v)
	if err != nil {
		return Null(), err
	}
	return String(fmt.Sprintf("var(--%s-alias-border-radius-%s)", ns, s)), nil
}

// HiddenValue maps true to "none" and false to an omitted property.
func HiddenValue(_ string, v Value) (Value, error) {
	b, ok := v.Boolean()
	if !ok {
		return Null(), unsupported("hidden", "a bool", v)
	}
	if b {
		return String("none"), nil
	}
	return Null(), nil
}

// FlexValue maps true to "1", false to an omitted property and stringifies
// numbers and strings.
func FlexValue(_ string, v Value) (Value, error) {
	switch v.Kind() {
	case KindBool:
		if b, _ := v.Boolean(); b {
			return String("1"), nil
		}
		return Null(), nil
	case KindNumber, KindString:
		return String(v.String()), nil
	default:
		return Null(), unsupported("flex", "a bool, number or string", v)
	}
}

// PassthroughValue returns the value unchanged.
func PassthroughValue(_ string, v Value) (Value, error) {
	return v, nil
}

// AnyValue returns the value unchanged. It is used where no semantic
// transformation applies, such as position and z-index.
func AnyValue(_ string, v Value) (Value, error) {
	return v, nil
}
