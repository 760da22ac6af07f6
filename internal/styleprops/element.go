package styleprops

import (
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

const (
	classNameWarning = "The className prop is unsafe and is unsupported. " +
		"Please use style props with design system variables, or UNSAFE_className if you absolutely must do something custom. " +
		"Note that this may break in future versions due to DOM structure changes."
	styleWarning = "The style prop is unsafe and is unsupported. " +
		"Please use style props with design system variables, or UNSAFE_style if you absolutely must do something custom. " +
		"Note that this may break in future versions due to DOM structure changes."
)

// ElementProps is the style-related input of a component.
type ElementProps struct {
	Props *Props

	// UnsafeClassName and UnsafeStyle are escape hatches applied as-is. Resolved
	// style props take precedence over UnsafeStyle.
	UnsafeClassName string
	UnsafeStyle     Style

	// ClassName and Style are unsupported and only produce a warning.
	ClassName string
	Style     Style
}

// Options configures BuildStyleProps. Zero fields fall back to BaseStyleProps,
// the "base" breakpoint only and left-to-right.
type Options struct {
	Handlers    *Handlers
	Breakpoints []string
	Direction   Direction
	Resolver    Resolver
	Logger      *logger.Logger
}

// StyleProps is the presentation data handed to a rendering layer.
type StyleProps struct {
	Style     Style
	ClassName string
	Hidden    bool
}

// BuildStyleProps resolves the props of an element and merges the escape
// hatches into the result.
func BuildStyleProps(el ElementProps, opts Options) (StyleProps, error) {
	handlers := BaseStyleProps
	if opts.Handlers != nil {
		handlers = *opts.Handlers
	}
	breakpoints := opts.Breakpoints
	if len(breakpoints) == 0 {
		breakpoints = []string{BaseBreakpoint}
	}

	resolved, err := opts.Resolver.Resolve(el.Props, handlers, opts.Direction, breakpoints)
	if err != nil {
		return StyleProps{}, err
	}

	style := el.UnsafeStyle.Clone()
	for k, v := range resolved {
		style[k] = v
	}

	if el.ClassName != "" {
		opts.Logger.Warn(classNameWarning)
	}
	if len(el.Style) > 0 {
		opts.Logger.Warn(styleWarning)
	}

	out := StyleProps{Style: style, ClassName: el.UnsafeClassName}
	if hidden, ok := el.Props.Get("isHidden"); ok {
		out.Hidden = hidden.Resolve(breakpoints).Truthy()
	}
	return out, nil
}
