// Package glyph maps checklist item states to their display symbols.
package glyph

// Glyph pairs a symbol with what it means in a rendered checklist.
type Glyph struct {
	Symbol  string
	Meaning string
}

type Mark int

const (
	// Open is an unchecked item.
	Open Mark = iota
	// Done is a checked item.
	Done
	// Partial is a category whose present descendants are partly
	// checked. Display-only; never stored.
	Partial
	// Category is an untouched category row.
	Category
	// Counter marks a repeat-mode item.
	Counter
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Symbol: "○", Meaning: "open"},
		{Symbol: "✔", Meaning: "done"},
		{Symbol: "◐", Meaning: "partially done"},
		{Symbol: "▸", Meaning: "category"},
		{Symbol: "↻", Meaning: "repeat counter"},
	}
}

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().Symbol
}
