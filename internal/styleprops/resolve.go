package styleprops

import (
	"sort"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

// Style maps physical property names to resolved values. Omitted properties
// have no key.
type Style map[string]Value

// Keys lists the physical property names in sorted order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy.
func (s Style) Clone() Style {
	cp := make(Style, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

// border width property -> derived border style property
var borderStyleProps = [...][2]string{
	{"borderWidth", "borderStyle"},
	{"borderLeftWidth", "borderLeftStyle"},
	{"borderRightWidth", "borderRightStyle"},
	{"borderTopWidth", "borderTopStyle"},
	{"borderBottomWidth", "borderBottomStyle"},
}

// Resolver converts props bags into physical styles. The zero value uses
// DefaultNamespace and discards log output.
type Resolver struct {
	Namespace string
	Logger    *logger.Logger
}

func (r Resolver) namespace() string {
	if r.Namespace == "" {
		return DefaultNamespace
	}
	return r.Namespace
}

// Resolve converts every recognised, non-null property in props using
// handlers, binds logical properties to a side using dir and picks responsive
// values using breakpoints. Unrecognised properties are skipped.
func (r Resolver) Resolve(props *Props, handlers Handlers, dir Direction, breakpoints []string) (Style, error) {
	ns := r.namespace()
	style := make(Style)

	for _, key := range props.Keys() {
		handler, ok := handlers.Lookup(key)
		if !ok {
			r.Logger.WithFields(map[string]any{"property": key}).Debug("skipping unrecognised style property")
			continue
		}
		prop, _ := props.Get(key)
		if !prop.IsResponsive() && prop.Base().IsNull() {
			continue
		}

		value := prop.Resolve(breakpoints)
		if value.IsNull() {
			return nil, contractError(key, ErrMissingBase)
		}
		converted, err := handler.Convert(ns, value)
		if err != nil {
			return nil, contractError(key, err)
		}

		for _, name := range handler.Name.Resolve(dir) {
			if converted.IsNull() {
				delete(style, name)
				continue
			}
			style[name] = converted
		}
	}

	for _, pair := range borderStyleProps {
		if v, ok := style[pair[0]]; ok && v.Truthy() {
			style[pair[1]] = String("solid")
			style["boxSizing"] = String("border-box")
		}
	}

	return style, nil
}

// Dimension resolves a single dimension value.
func (r Resolver) Dimension(v Value) (string, error) {
	out, err := DimensionValue(r.namespace(), v)
	if err != nil {
		return "", contractError("", err)
	}
	return out.String(), nil
}

// ResponsiveDimension picks the value for breakpoints and resolves it as a dimension.
func (r Resolver) ResponsiveDimension(v Responsive[Value], breakpoints []string) (string, error) {
	value := v.Resolve(breakpoints)
	if value.IsNull() {
		return "", contractError("", ErrMissingBase)
	}
	return r.Dimension(value)
}

// ResolveStyleProperties resolves props with the default namespace.
func ResolveStyleProperties(props *Props, handlers Handlers, dir Direction, breakpoints []string) (Style, error) {
	return Resolver{}.Resolve(props, handlers, dir, breakpoints)
}

// ResolveDimension resolves a single dimension value with the default namespace.
func ResolveDimension(v Value) (string, error) {
	return Resolver{}.Dimension(v)
}

// ResolveResponsiveDimension resolves a responsive dimension with the default namespace.
func ResolveResponsiveDimension(v Responsive[Value], breakpoints []string) (string, error) {
	return Resolver{}.ResponsiveDimension(v, breakpoints)
}
