// Package styleprops resolves a design system's abstract style properties into
// physical presentation properties.
//
// # Overview
//
// A props bag maps abstract names such as "marginStart" or "backgroundColor" to
// plain or responsive values. A handler table says, for every abstract name, which
// physical property (or properties) it writes and which converter turns the
// abstract value into the physical one:
//
//	props := styleprops.NewProps().
//		Set("marginStart", styleprops.Plain(styleprops.Number(10))).
//		Set("backgroundColor", styleprops.Plain(styleprops.String("gray-50")))
//
//	style, err := styleprops.ResolveStyleProperties(props, styleprops.ViewStyleProps, styleprops.RTL, []string{"base"})
//	// style["marginRight"] == styleprops.String("10px")
//
// # Direction
//
// Logical properties (start/end) are bound to a physical side through a Name
// built with Flip. The writing direction passed to the resolver picks the side.
//
// # Breakpoints
//
// Responsive values carry a mandatory "base" entry plus optional per-breakpoint
// overrides. The resolver walks the matched breakpoint list in priority order and
// falls back to "base". Breakpoint detection is the caller's job.
//
// # Design tokens
//
// Converters emit CSS custom-property references in a fixed naming scheme, for
// example var(--spectrum-global-dimension-size-100, var(--spectrum-alias-dimension-size-100)).
// The "spectrum" namespace can be replaced through Resolver.Namespace.
//
// Everything in this package is pure and safe for concurrent use. The two
// prebuilt tables BaseStyleProps and ViewStyleProps are read-only.
package styleprops
