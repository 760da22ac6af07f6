package styleprops

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var unitSuffixes = []interface{}{
	"%", "px", "em", "rem", "vw", "vh", "auto", "cm", "mm", "in", "pt", "pc", "ex", "ch", "vmin", "vmax", "fr",
}

func TestDimensionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("numbers gain a pixel suffix", prop.ForAll(
		func(n float64) bool {
			got, err := ResolveDimension(Number(n))
			return err == nil && got == formatNumber(n)+"px"
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("pixel output resolves to itself", prop.ForAll(
		func(n int) bool {
			first, err := ResolveDimension(Number(float64(n)))
			if err != nil {
				return false
			}
			second, err := ResolveDimension(String(first))
			return err == nil && first == second
		},
		gen.IntRange(-10000, 10000),
	))

	properties.Property("unit-bearing strings pass through", prop.ForAll(
		func(n int, unit string) bool {
			s := fmt.Sprintf("%d%s", n, unit)
			got, err := ResolveDimension(String(s))
			return err == nil && got == s
		},
		gen.IntRange(0, 10000),
		gen.OneConstOf(unitSuffixes...),
	))

	properties.Property("bare tokens become two-level variables", prop.ForAll(
		func(token string) bool {
			got, err := ResolveDimension(String(token))
			want := fmt.Sprintf("var(--spectrum-global-dimension-%s, var(--spectrum-alias-dimension-%s))", token, token)
			return err == nil && got == want
		},
		gen.RegexMatch(`^[a-z]{1,8}-[0-9]{1,4}$`),
	))

	properties.TestingRun(t)
}

func TestResolutionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("responsive values fall back to base", prop.ForAll(
		func(base, override int) bool {
			v := ByBreakpoint(Number(float64(base)), map[string]Value{"M": Number(float64(override))})
			return v.Resolve([]string{"L"}) == Number(float64(base)) &&
				v.Resolve([]string{"L", "M"}) == Number(float64(override))
		},
		gen.IntRange(1, 1000),
		gen.IntRange(1, 1000),
	))

	properties.Property("margin start lands on opposite sides per direction", prop.ForAll(
		func(n int) bool {
			props := NewProps().SetValue("marginStart", Number(float64(n)))
			ltr, err := ResolveStyleProperties(props, BaseStyleProps, LTR, []string{BaseBreakpoint})
			if err != nil {
				return false
			}
			rtl, err := ResolveStyleProperties(props, BaseStyleProps, RTL, []string{BaseBreakpoint})
			if err != nil {
				return false
			}
			_, ltrHasRight := ltr["marginRight"]
			_, rtlHasLeft := rtl["marginLeft"]
			return ltr["marginLeft"] == rtl["marginRight"] && !ltrHasRight && !rtlHasLeft
		},
		gen.IntRange(-500, 500),
	))

	properties.Property("null props never produce keys", prop.ForAll(
		func(idx int) bool {
			keys := ViewStyleProps.Keys()
			key := keys[idx%len(keys)]
			props := NewProps().SetValue(key, Null())
			style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, []string{BaseBreakpoint})
			return err == nil && len(style) == 0
		},
		gen.IntRange(0, math.MaxInt16),
	))

	properties.TestingRun(t)
}
