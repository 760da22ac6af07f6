package styleprops

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var baseOnly = []string{BaseBreakpoint}

func TestResolveMarginStartFollowsDirection(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("marginStart", Number(10))

	style, err := ResolveStyleProperties(props, BaseStyleProps, RTL, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{"marginRight": String("10px")}, style)

	style, err = ResolveStyleProperties(props, BaseStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{"marginLeft": String("10px")}, style)
}

func TestResolveBackgroundColor(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("backgroundColor", String("red-500"))

	style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{
		"backgroundColor": String("var(--spectrum-alias-background-color-red-500, var(--spectrum-global-color-red-500, var(--spectrum-semantic-red-500-color-background)))"),
	}, style)
}

func TestResolveIgnoresViewPropsWithBaseTable(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("backgroundColor", String("red-500"))

	style, err := ResolveStyleProperties(props, BaseStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Empty(t, style)
}

func TestResolveDerivesBorderStyleFromNumericWidth(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("borderWidth", Number(2))

	style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{
		"borderWidth": String("var(--spectrum-alias-border-size-2)"),
		"borderStyle": String("solid"),
		"boxSizing":   String("border-box"),
	}, style)
}

func TestResolveDerivesBorderStyle(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("borderWidth", String("thin"))

	style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, String("var(--spectrum-alias-border-size-thin)"), style["borderWidth"])
	require.Equal(t, String("solid"), style["borderStyle"])
	require.Equal(t, String("border-box"), style["boxSizing"])
}

func TestResolveDerivesSideBorderStyles(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("borderXWidth", String("thick"))

	style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, String("solid"), style["borderLeftStyle"])
	require.Equal(t, String("solid"), style["borderRightStyle"])
	require.NotContains(t, style, "borderStyle")
	require.NotContains(t, style, "borderTopStyle")
	require.Equal(t, String("border-box"), style["boxSizing"])
}

func TestResolveWithoutBorderWidthHasNoBorderStyle(t *testing.T) {
	t.Parallel()

	props := NewProps().
		SetValue("borderColor", String("default")).
		SetValue("padding", Number(8))

	style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.NotContains(t, style, "borderStyle")
	require.NotContains(t, style, "boxSizing")
	require.Equal(t, String("var(--spectrum-alias-border-color)"), style["borderColor"])
	require.Equal(t, String("8px"), style["padding"])
}

func TestResolveSkipsNullAndUnknownProps(t *testing.T) {
	t.Parallel()

	props := NewProps().
		SetValue("width", Null()).
		SetValue("colour", String("red")).
		SetValue("height", Number(20))

	style, err := ResolveStyleProperties(props, BaseStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{"height": String("20px")}, style)
}

func TestResolveLogsSkippedProps(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	props := NewProps().SetValue("bogus", Number(1))
	_, err = Resolver{Logger: log}.Resolve(props, BaseStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "skipping unrecognised style property")
	require.Contains(t, buf.String(), "bogus")
}

func TestResolveWritesEveryListedName(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("marginX", String("size-100"))

	style, err := ResolveStyleProperties(props, BaseStyleProps, RTL, baseOnly)
	require.NoError(t, err)
	want := String("var(--spectrum-global-dimension-size-100, var(--spectrum-alias-dimension-size-100))")
	require.Equal(t, Style{"marginLeft": want, "marginRight": want}, style)
}

func TestResolveLaterPropsOverrideEarlierOnes(t *testing.T) {
	t.Parallel()

	props := NewProps().
		SetValue("marginX", Number(4)).
		SetValue("marginStart", Number(8))

	style, err := ResolveStyleProperties(props, BaseStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{"marginLeft": String("8px"), "marginRight": String("4px")}, style)
}

func TestResolveResponsiveProps(t *testing.T) {
	t.Parallel()

	padding, err := ResponsiveFromMap(map[string]Value{"base": Number(4), "M": Number(8)})
	require.NoError(t, err)
	height, err := ResponsiveFromMap(map[string]Value{"base": Number(4)})
	require.NoError(t, err)

	props := NewProps().Set("padding", padding).Set("height", height)

	style, err := ResolveStyleProperties(props, ViewStyleProps, LTR, []string{"L", "M"})
	require.NoError(t, err)
	require.Equal(t, String("8px"), style["padding"])
	require.Equal(t, String("4px"), style["height"])
}

func TestResolveKeepsAnyValueTypes(t *testing.T) {
	t.Parallel()

	props := NewProps().
		SetValue("zIndex", Number(3)).
		SetValue("position", String("absolute")).
		SetValue("isHidden", Bool(false)).
		SetValue("flex", Bool(true))

	style, err := ResolveStyleProperties(props, BaseStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{
		"zIndex":   Number(3),
		"position": String("absolute"),
		"flex":     String("1"),
	}, style)
}

func TestResolveHiddenOmitsDisplayWhenFalse(t *testing.T) {
	t.Parallel()

	hidden := ByBreakpoint(Bool(true), map[string]Value{"L": Bool(false)})
	props := NewProps().Set("isHidden", hidden)

	style, err := ResolveStyleProperties(props, BaseStyleProps, LTR, []string{"L"})
	require.NoError(t, err)
	require.Equal(t, Style{"display": String("none")}, style)
}

func TestResolveReportsContractErrors(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("width", Bool(true))

	_, err := ResolveStyleProperties(props, BaseStyleProps, LTR, baseOnly)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedValue)

	var contractErr *apperrors.ContractError
	require.ErrorAs(t, err, &contractErr)
	require.Equal(t, "width", contractErr.Property)
}

func TestResolveRejectsResponsiveWithoutBase(t *testing.T) {
	t.Parallel()

	props := NewProps().Set("width", ByBreakpoint(Null(), map[string]Value{"M": Number(8)}))

	style, err := ResolveStyleProperties(props, BaseStyleProps, LTR, []string{"M"})
	require.NoError(t, err)
	require.Equal(t, String("8px"), style["width"])

	_, err = ResolveStyleProperties(props, BaseStyleProps, LTR, []string{"S"})
	require.ErrorIs(t, err, ErrMissingBase)
}

func TestResolverNamespace(t *testing.T) {
	t.Parallel()

	props := NewProps().SetValue("borderRadius", String("medium"))

	style, err := Resolver{Namespace: "acme"}.Resolve(props, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Equal(t, Style{"borderRadius": String("var(--acme-alias-border-radius-medium)")}, style)
}

func TestResolveNilProps(t *testing.T) {
	t.Parallel()

	style, err := ResolveStyleProperties(nil, ViewStyleProps, LTR, baseOnly)
	require.NoError(t, err)
	require.Empty(t, style)
}

func TestResolveDimensionHelpers(t *testing.T) {
	t.Parallel()

	got, err := ResolveDimension(Number(16))
	require.NoError(t, err)
	require.Equal(t, "16px", got)

	v, err := ResponsiveFromMap(map[string]Value{"base": String("size-100"), "S": Number(4)})
	require.NoError(t, err)

	got, err = ResolveResponsiveDimension(v, []string{"S"})
	require.NoError(t, err)
	require.Equal(t, "4px", got)

	got, err = ResolveResponsiveDimension(v, []string{"M"})
	require.NoError(t, err)
	require.Equal(t, "var(--spectrum-global-dimension-size-100, var(--spectrum-alias-dimension-size-100))", got)

	_, err = ResolveDimension(Bool(false))
	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestStyleKeysSorted(t *testing.T) {
	t.Parallel()

	style := Style{"width": String("1px"), "height": String("2px"), "display": String("none")}
	require.Equal(t, []string{"display", "height", "width"}, style.Keys())

	cp := style.Clone()
	cp["width"] = String("3px")
	require.Equal(t, String("1px"), style["width"])
}
