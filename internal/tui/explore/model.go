// Package explore is an interactive view that re-resolves a props document
// while the user flips direction, steps through breakpoint priority and swaps
// handler tables.
package explore

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/cssdecl"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
)

// Config seeds the model.
type Config struct {
	Source      string
	Element     styleprops.ElementProps
	Resolver    styleprops.Resolver
	Handlers    string
	Breakpoints []string
	Direction   styleprops.Direction
	Logger      *logger.Logger
}

// ElementChangedMsg replaces the element being explored, e.g. after the
// source file was edited.
type ElementChangedMsg struct {
	Element styleprops.ElementProps
	Err     error
}

// Model is the bubbletea model of the explore view.
type Model struct {
	source      string
	element     styleprops.ElementProps
	resolver    styleprops.Resolver
	handlers    string
	breakpoints []string
	offset      int
	direction   styleprops.Direction
	logger      *logger.Logger

	keys keyMap
	help help.Model

	result    styleprops.StyleProps
	err       error
	width     int
	showProps bool
}

// New builds a model and resolves the element once.
func New(cfg Config) Model {
	handlers := cfg.Handlers
	if _, ok := styleprops.HandlersByName(handlers); !ok {
		handlers = "view"
	}
	m := Model{
		source:      cfg.Source,
		element:     cfg.Element,
		resolver:    cfg.Resolver,
		handlers:    handlers,
		breakpoints: withoutBase(cfg.Breakpoints),
		direction:   cfg.Direction,
		logger:      cfg.Logger,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.resolve()
	return m
}

func withoutBase(bps []string) []string {
	out := make([]string, 0, len(bps))
	for _, bp := range bps {
		if bp != styleprops.BaseBreakpoint {
			out = append(out, bp)
		}
	}
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveBreakpoints returns the breakpoints currently considered matched,
// highest priority first and always ending in "base".
func (m Model) ActiveBreakpoints() []string {
	active := make([]string, 0, len(m.breakpoints)-m.offset+1)
	active = append(active, m.breakpoints[m.offset:]...)
	return append(active, styleprops.BaseBreakpoint)
}

// Direction returns the current writing direction.
func (m Model) Direction() styleprops.Direction { return m.direction }

// Result returns the latest resolution and its error.
func (m Model) Result() (styleprops.StyleProps, error) { return m.result, m.err }

func (m *Model) resolve() {
	table, _ := styleprops.HandlersByName(m.handlers)
	m.result, m.err = styleprops.BuildStyleProps(m.element, styleprops.Options{
		Handlers:    &table,
		Breakpoints: m.ActiveBreakpoints(),
		Direction:   m.direction,
		Resolver:    m.resolver,
		Logger:      m.logger,
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ElementChangedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.element = msg.Element
		m.resolve()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Direction):
			if m.direction == styleprops.LTR {
				m.direction = styleprops.RTL
			} else {
				m.direction = styleprops.LTR
			}
			m.resolve()
		case key.Matches(msg, m.keys.Narrower):
			if m.offset < len(m.breakpoints) {
				m.offset++
				m.resolve()
			}
		case key.Matches(msg, m.keys.Wider):
			if m.offset > 0 {
				m.offset--
				m.resolve()
			}
		case key.Matches(msg, m.keys.Props):
			m.showProps = !m.showProps
		case key.Matches(msg, m.keys.Handlers):
			if m.handlers == "view" {
				m.handlers = "base"
			} else {
				m.handlers = "view"
			}
			m.resolve()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.Header(tui.Context{
		Source:      m.source,
		Direction:   m.direction,
		Breakpoints: m.ActiveBreakpoints(),
		Handlers:    m.handlers,
		Namespace:   m.resolver.Namespace,
	}))
	b.WriteString("\n\n")

	if m.showProps && m.element.Props.Len() > 0 {
		b.WriteString(tui.PropsTable(m.element.Props))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(tui.Error(m.err))
	case len(m.result.Style) == 0:
		b.WriteString(tui.Empty())
	default:
		b.WriteString(tui.StyleTable(m.result.Style))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(cssdecl.FormatInline(m.result.Style)))
	}

	var flags []string
	if m.result.ClassName != "" {
		flags = append(flags, "class="+m.result.ClassName)
	}
	if m.result.Hidden {
		flags = append(flags, "hidden")
	}
	if len(flags) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(flags, "  "))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
