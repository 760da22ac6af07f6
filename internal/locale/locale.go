// Package locale derives the writing direction of a BCP 47 locale.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
)

// scripts written right to left
var rtlScripts = map[string]struct{}{
	"Arab": {},
	"Hebr": {},
	"Thaa": {},
	"Syrc": {},
	"Nkoo": {},
	"Adlm": {},
	"Rohg": {},
	"Mand": {},
	"Samr": {},
}

// DirectionFor returns RTL when the locale's script, explicit or inferred, is
// written right to left.
func DirectionFor(tag string) (styleprops.Direction, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return styleprops.LTR, fmt.Errorf("parse locale %q: %w", tag, err)
	}
	return DirectionForTag(parsed), nil
}

// DirectionForTag is DirectionFor for an already parsed tag.
func DirectionForTag(tag language.Tag) styleprops.Direction {
	script, _ := tag.Script()
	if _, ok := rtlScripts[script.String()]; ok {
		return styleprops.RTL
	}
	return styleprops.LTR
}
