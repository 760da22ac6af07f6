package styleprops

import (
	"fmt"
	"strings"
)

// Direction is the writing direction used to bind logical properties.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection accepts "ltr" or "rtl" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, fmt.Errorf("unknown direction %q", s)
	}
}

// NameKind discriminates the three shapes of a Name.
type NameKind int

const (
	NameLiteral NameKind = iota
	NameList
	NameDirectional
)

// Name says which physical property an abstract property writes to: a single
// name, a list of names written with the same value, or a pair selected by
// direction.
type Name struct {
	kind  NameKind
	names []string
	ltr   string
	rtl   string
}

// Literal names a single physical property.
func Literal(name string) Name {
	return Name{kind: NameLiteral, names: []string{name}}
}

// Names writes the same value to every listed physical property.
func Names(names ...string) Name {
	cp := make([]string, len(names))
	copy(cp, names)
	return Name{kind: NameList, names: cp}
}

// Flip selects ltr for left-to-right and rtl for right-to-left.
func Flip(ltr, rtl string) Name {
	return Name{kind: NameDirectional, ltr: ltr, rtl: rtl}
}

// Kind reports the shape of the name.
func (n Name) Kind() NameKind { return n.kind }

// Select returns the physical name for a direction. Only meaningful for
// directional names; other shapes return their first name.
func (n Name) Select(dir Direction) string {
	if n.kind == NameDirectional {
		if dir == RTL {
			return n.rtl
		}
		return n.ltr
	}
	if len(n.names) == 0 {
		return ""
	}
	return n.names[0]
}

// Resolve returns the physical names written for a direction. The returned
// slice is a fresh copy.
func (n Name) Resolve(dir Direction) []string {
	if n.kind == NameDirectional {
		return []string{n.Select(dir)}
	}
	cp := make([]string, len(n.names))
	copy(cp, n.names)
	return cp
}

// ResolveDirection is the function form of Name.Resolve.
func ResolveDirection(n Name, dir Direction) []string {
	return n.Resolve(dir)
}

func (n Name) String() string {
	switch n.kind {
	case NameDirectional:
		return fmt.Sprintf("%s|%s", n.ltr, n.rtl)
	default:
		return strings.Join(n.names, ",")
	}
}
