package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestParseKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse("card.yaml", []byte(`
props:
  width: 200
  marginX: size-100
  marginStart: 8
  isHidden: false
  zIndex: 2.5
  gridArea: "10"
  height: ~
`))
	require.NoError(t, err)
	require.Equal(t, []string{"width", "marginX", "marginStart", "isHidden", "zIndex", "gridArea", "height"}, doc.Props.Keys())

	v, _ := doc.Props.Get("width")
	require.Equal(t, styleprops.Number(200), v.Base())
	v, _ = doc.Props.Get("isHidden")
	require.Equal(t, styleprops.Bool(false), v.Base())
	v, _ = doc.Props.Get("zIndex")
	require.Equal(t, styleprops.Number(2.5), v.Base())
	v, _ = doc.Props.Get("gridArea")
	require.Equal(t, styleprops.String("10"), v.Base())
	v, _ = doc.Props.Get("height")
	require.True(t, v.Base().IsNull())

	style, err := styleprops.ResolveStyleProperties(doc.Props, styleprops.BaseStyleProps, styleprops.LTR, []string{"base"})
	require.NoError(t, err)
	require.Equal(t, styleprops.String("8px"), style["marginLeft"])
	require.NotContains(t, style, "height")
}

func TestParseResponsiveProps(t *testing.T) {
	t.Parallel()

	doc, err := Parse("card.yaml", []byte(`
props:
  padding: {base: 4, M: 8}
`))
	require.NoError(t, err)

	v, ok := doc.Props.Get("padding")
	require.True(t, ok)
	require.True(t, v.IsResponsive())
	require.Equal(t, styleprops.Number(8), v.Resolve([]string{"L", "M"}))
	require.Equal(t, styleprops.Number(4), v.Resolve([]string{"L"}))
}

func TestParseUnsafeStyleForms(t *testing.T) {
	t.Parallel()

	doc, err := Parse("card.yaml", []byte(`
unsafe_class_name: legacy-card
unsafe_style: "color: red; border-top-width: 2px"
class_name: nope
style:
  color: blue
  zIndex: 1
`))
	require.NoError(t, err)
	require.Equal(t, "legacy-card", doc.UnsafeClassName)
	require.Equal(t, "nope", doc.ClassName)
	require.Equal(t, styleprops.Style{
		"color":          styleprops.String("red"),
		"borderTopWidth": styleprops.String("2px"),
	}, doc.UnsafeStyle)
	require.Equal(t, styleprops.Style{
		"color":  styleprops.String("blue"),
		"zIndex": styleprops.Number(1),
	}, doc.Style)

	el := doc.Element()
	require.Equal(t, doc.Props, el.Props)
	require.Equal(t, "legacy-card", el.UnsafeClassName)
}

func TestParseReportsEveryBadEntry(t *testing.T) {
	t.Parallel()

	_, err := Parse("card.yaml", []byte(`props:
  padding: {M: 8}
  margin: [1, 2]
  width: 10
`))
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "card.yaml", parseErr.Path)
	require.Equal(t, 2, parseErr.Line)

	errs := multierr.Errors(parseErr.Unwrap())
	require.Len(t, errs, 2)
	require.ErrorIs(t, errs[0], styleprops.ErrMissingBase)
	require.Contains(t, errs[1].Error(), "props.margin")
}

func TestParseRejectsNonMappingProps(t *testing.T) {
	t.Parallel()

	_, err := Parse("card.yaml", []byte("props: 12\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "props must be a mapping")
}

func TestParseInvalidYAMLReportsLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("card.yaml", []byte("props:\n  width: 10\n bad: [\n"))
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Positive(t, parseErr.Line)
}

func TestLoadFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "button.yaml")
	require.NoError(t, os.WriteFile(path, []byte("props:\n  flex: true\n"), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, doc.Path)
	require.Equal(t, []string{"flex"}, doc.Props.Keys())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
