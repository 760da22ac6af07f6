// Package document loads props documents: YAML files that describe the style
// props of a single element.
//
//	props:
//	  marginStart: 10
//	  padding: {base: size-100, M: size-200}
//	unsafe_class_name: legacy-card
//	unsafe_style: "color: red"
//
// Keys under props are kept in document order so that later props override
// earlier ones the same way they would in source code.
package document

import (
	"fmt"
	"os"
	"regexp"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/cssdecl"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is a decoded props document.
type Document struct {
	Path            string
	Props           *styleprops.Props
	UnsafeClassName string
	UnsafeStyle     styleprops.Style
	ClassName       string
	Style           styleprops.Style
}

type rawDocument struct {
	Props           yaml.Node `yaml:"props"`
	UnsafeClassName string    `yaml:"unsafe_class_name"`
	UnsafeStyle     yaml.Node `yaml:"unsafe_style"`
	ClassName       string    `yaml:"class_name"`
	Style           yaml.Node `yaml:"style"`
}

// Element returns the document as resolver input.
func (d *Document) Element() styleprops.ElementProps {
	return styleprops.ElementProps{
		Props:           d.Props,
		UnsafeClassName: d.UnsafeClassName,
		UnsafeStyle:     d.UnsafeStyle,
		ClassName:       d.ClassName,
		Style:           d.Style,
	}
}

// Load reads and decodes a props document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a props document. Every malformed entry is reported, not just
// the first one.
func Parse(path string, data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	doc := &Document{
		Path:            path,
		Props:           styleprops.NewProps(),
		UnsafeClassName: raw.UnsafeClassName,
		ClassName:       raw.ClassName,
	}

	d := &decoder{}
	d.props(&raw.Props, doc.Props)
	doc.UnsafeStyle = d.style("unsafe_style", &raw.UnsafeStyle)
	doc.Style = d.style("style", &raw.Style)

	if d.errs != nil {
		return nil, apperrors.NewParseError(path, d.firstLine, d.errs)
	}
	return doc, nil
}

type decoder struct {
	errs      error
	firstLine int
}

func (d *decoder) fail(node *yaml.Node, format string, args ...any) {
	if d.firstLine == 0 || (node.Line > 0 && node.Line < d.firstLine) {
		d.firstLine = node.Line
	}
	d.errs = multierr.Append(d.errs, fmt.Errorf("line %d: "+format, append([]any{node.Line}, args...)...))
}

func (d *decoder) props(node *yaml.Node, into *styleprops.Props) {
	if node.Kind == 0 {
		return
	}
	if node.Kind != yaml.MappingNode {
		d.fail(node, "props must be a mapping")
		return
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch value.Kind {
		case yaml.ScalarNode:
			v, err := scalar(value)
			if err != nil {
				d.fail(value, "props.%s: %w", key.Value, err)
				continue
			}
			into.SetValue(key.Value, v)
		case yaml.MappingNode:
			r, ok := d.responsive(key.Value, value)
			if ok {
				into.Set(key.Value, r)
			}
		default:
			d.fail(value, "props.%s: expected a scalar or a breakpoint mapping", key.Value)
		}
	}
}

func (d *decoder) responsive(key string, node *yaml.Node) (styleprops.Responsive[styleprops.Value], bool) {
	values := make(map[string]styleprops.Value, len(node.Content)/2)
	ok := true
	for i := 0; i+1 < len(node.Content); i += 2 {
		bp, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			d.fail(value, "props.%s.%s: breakpoint values must be scalars", key, bp.Value)
			ok = false
			continue
		}
		v, err := scalar(value)
		if err != nil {
			d.fail(value, "props.%s.%s: %w", key, bp.Value, err)
			ok = false
			continue
		}
		values[bp.Value] = v
	}
	if !ok {
		return styleprops.Responsive[styleprops.Value]{}, false
	}

	r, err := styleprops.ResponsiveFromMap(values)
	if err != nil {
		d.fail(node, "props.%s: %w", key, err)
		return r, false
	}
	return r, true
}

func (d *decoder) style(field string, node *yaml.Node) styleprops.Style {
	switch node.Kind {
	case 0:
		return nil
	case yaml.ScalarNode:
		style, err := cssdecl.ParseStyle(node.Value)
		if err != nil {
			d.fail(node, "%s: %w", field, err)
			return nil
		}
		return style
	case yaml.MappingNode:
		style := make(styleprops.Style, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				d.fail(value, "%s.%s: expected a scalar", field, key.Value)
				continue
			}
			v, err := scalar(value)
			if err != nil {
				d.fail(value, "%s.%s: %w", field, key.Value, err)
				continue
			}
			style[key.Value] = v
		}
		return style
	default:
		d.fail(node, "%s: expected declaration text or a mapping", field)
		return nil
	}
}

func scalar(node *yaml.Node) (styleprops.Value, error) {
	var x any
	if err := node.Decode(&x); err != nil {
		return styleprops.Null(), err
	}
	return styleprops.ValueOf(x)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
