// Package tui renders resolved styles and handler tables for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/stylekit/internal/cssdecl"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
)

// Context describes the inputs a style was resolved with.
type Context struct {
	Source      string
	Direction   styleprops.Direction
	Breakpoints []string
	Handlers    string
	Namespace   string
}

// Header renders a one-line summary of the resolution inputs.
func Header(ctx Context) string {
	parts := []string{
		labelStyle.Render("direction ") + emphasisStyle.Render(ctx.Direction.String()),
		labelStyle.Render("breakpoints ") + emphasisStyle.Render(strings.Join(ctx.Breakpoints, " > ")),
		labelStyle.Render("handlers ") + emphasisStyle.Render(ctx.Handlers),
	}
	if ctx.Namespace != "" {
		parts = append(parts, labelStyle.Render("namespace ")+emphasisStyle.Render(ctx.Namespace))
	}
	title := titleStyle.Render(ctx.Source)
	if ctx.Source == "" {
		title = titleStyle.Render("resolved style")
	}
	return title + "\n" + strings.Join(parts, labelStyle.Render("  ·  "))
}

// StyleTable renders a resolved style as a property/value table sorted by
// CSS property name.
func StyleTable(style styleprops.Style) string {
	keys := style.Keys()
	rows := make([][]string, 0, len(keys))
	values := make([]styleprops.Value, 0, len(keys))
	for _, key := range keys {
		v := style[key]
		rows = append(rows, []string{cssdecl.PropertyName(key), v.String()})
		values = append(values, v)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("PROPERTY", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(values) {
				return valueStyle(values[row])
			}
			return cellStyle
		})
	return t.String()
}

func valueStyle(v styleprops.Value) lipgloss.Style {
	if v.Kind() == styleprops.KindNumber {
		return numberStyle
	}
	if s, _ := v.Str(); strings.HasPrefix(s, "var(") {
		return tokenStyle
	}
	return cellStyle
}

// HandlerTable lists every abstract property of a table with the physical
// names it writes in each direction.
func HandlerTable(h styleprops.Handlers) string {
	rows := make([][]string, 0, h.Len())
	for _, key := range h.Keys() {
		handler, _ := h.Lookup(key)
		rows = append(rows, []string{
			key,
			strings.Join(handler.Name.Resolve(styleprops.LTR), ", "),
			strings.Join(handler.Name.Resolve(styleprops.RTL), ", "),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("PROP", "LTR", "RTL").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// PropsTable lists the abstract props of a bag in definition order with their
// base value and breakpoint overrides.
func PropsTable(props *styleprops.Props) string {
	keys := props.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		v, _ := props.Get(key)
		overrides := make([]string, 0, len(v.Breakpoints()))
		for _, bp := range v.Breakpoints() {
			o, _ := v.At(bp)
			overrides = append(overrides, bp+"="+displayValue(o))
		}
		rows = append(rows, []string{key, displayValue(v.Base()), strings.Join(overrides, " ")})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("PROP", "BASE", "OVERRIDES").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func displayValue(v styleprops.Value) string {
	if v.IsNull() {
		return "null"
	}
	return v.String()
}

// Empty renders the placeholder shown when nothing resolved.
func Empty() string {
	return labelStyle.Render("(no style properties resolved)")
}

// Error renders a resolution failure.
func Error(err error) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render(fmt.Sprintf("error: %v", err))
}
