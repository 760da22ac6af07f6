// Package cssdecl converts between inline CSS declaration text and resolved
// style mappings.
package cssdecl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
)

// Declaration is a single "property: value" pair as written in the source.
type Declaration struct {
	Property string
	Value    string
}

// Parse reads inline declarations such as "color: red; margin: 0 auto".
// Declarations without a value are dropped.
func Parse(text string) ([]Declaration, error) {
	parser := css.NewParser(parse.NewInput(bytes.NewBufferString(text)), true)

	var decls []Declaration
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse declarations: %w", err)
			}
			return decls, nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value := joinTokens(parser.Values())
			if value == "" {
				continue
			}
			decls = append(decls, Declaration{Property: strings.ToLower(string(data)), Value: value})
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	pendingSpace := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// ToStyle maps declarations onto a style keyed by camel-cased property names.
// Custom properties keep their name. Later declarations win.
func ToStyle(decls []Declaration) styleprops.Style {
	style := make(styleprops.Style, len(decls))
	for _, d := range decls {
		style[CamelName(d.Property)] = styleprops.String(d.Value)
	}
	return style
}

// ParseStyle is Parse followed by ToStyle.
func ParseStyle(text string) (styleprops.Style, error) {
	decls, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return ToStyle(decls), nil
}

// CamelName turns "border-top-left-radius" into "borderTopLeftRadius" and
// "-webkit-transition" into "WebkitTransition". Custom properties are kept.
func CamelName(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	if strings.HasPrefix(property, "-ms-") {
		property = property[1:]
	}
	var b strings.Builder
	upper := false
	for i, r := range property {
		if r == '-' {
			upper = i > 0 || b.Len() == 0
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PropertyName turns a camel-cased physical property into its CSS name.
func PropertyName(camel string) string {
	if strings.HasPrefix(camel, "--") {
		return camel
	}
	var b strings.Builder
	for _, r := range camel {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	name := b.String()
	if strings.HasPrefix(name, "ms-") {
		name = "-" + name
	}
	return name
}

// Format renders a style as declaration lines sorted by property name.
func Format(style styleprops.Style) string {
	var b strings.Builder
	for _, key := range style.Keys() {
		v := style[key]
		if v.IsNull() {
			continue
		}
		fmt.Fprintf(&b, "%s: %s;\n", PropertyName(key), v.String())
	}
	return b.String()
}

// FormatInline renders a style as a single-line style attribute value.
func FormatInline(style styleprops.Style) string {
	return strings.TrimSpace(strings.ReplaceAll(Format(style), ";\n", "; "))
}
