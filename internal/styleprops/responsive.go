package styleprops

import (
	"sort"
)

// BaseBreakpoint is the fallback tier every responsive value must define.
const BaseBreakpoint = "base"

type truthy interface {
	Truthy() bool
}

type nullable interface {
	IsNull() bool
}

// Responsive holds either a plain value or a per-breakpoint mapping with a
// mandatory base entry. Construct it with Plain, ByBreakpoint or
// ResponsiveFromMap; the zero value is a plain zero T.
type Responsive[T comparable] struct {
	base        T
	breakpoints map[string]T
}

// Plain wraps a non-responsive value.
func Plain[T comparable](v T) Responsive[T] {
	return Responsive[T]{base: v}
}

// ByBreakpoint builds a responsive value from a base and per-breakpoint
// overrides. A "base" key inside overrides is ignored in favour of base.
func ByBreakpoint[T comparable](base T, overrides map[string]T) Responsive[T] {
	bps := make(map[string]T, len(overrides))
	for name, v := range overrides {
		if name == BaseBreakpoint {
			continue
		}
		bps[name] = v
	}
	return Responsive[T]{base: base, breakpoints: bps}
}

// ResponsiveFromMap builds a responsive value from a decoded mapping. The
// mapping must contain a non-null "base" entry.
func ResponsiveFromMap[T comparable](m map[string]T) (Responsive[T], error) {
	base, ok := m[BaseBreakpoint]
	if !ok {
		return Responsive[T]{}, ErrMissingBase
	}
	if n, isNullable := any(base).(nullable); isNullable && n.IsNull() {
		return Responsive[T]{}, ErrMissingBase
	}
	return ByBreakpoint(base, m), nil
}

// IsResponsive reports whether the value carries a breakpoint mapping.
func (r Responsive[T]) IsResponsive() bool {
	return r.breakpoints != nil
}

// Base returns the fallback value, which is the whole value when it is plain.
func (r Responsive[T]) Base() T {
	return r.base
}

// Breakpoints lists the override breakpoint names in sorted order.
func (r Responsive[T]) Breakpoints() []string {
	names := make([]string, 0, len(r.breakpoints))
	for name := range r.breakpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the override for a breakpoint, with "base" mapping to the base value.
func (r Responsive[T]) At(breakpoint string) (T, bool) {
	if breakpoint == BaseBreakpoint {
		return r.base, true
	}
	v, ok := r.breakpoints[breakpoint]
	return v, ok
}

// Resolve picks the value for the matched breakpoints, highest priority first.
// The first breakpoint with a truthy entry wins; otherwise base is returned.
func (r Responsive[T]) Resolve(matched []string) T {
	if !r.IsResponsive() {
		return r.base
	}
	for _, bp := range matched {
		if v, ok := r.At(bp); ok && isTruthy(v) {
			return v
		}
	}
	return r.base
}

// ResolveResponsive is the function form of Responsive.Resolve.
func ResolveResponsive[T comparable](r Responsive[T], matched []string) T {
	return r.Resolve(matched)
}

func isTruthy[T comparable](v T) bool {
	if t, ok := any(v).(truthy); ok {
		return t.Truthy()
	}
	var zero T
	return v != zero
}
