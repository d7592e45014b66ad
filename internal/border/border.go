// Package border builds the box-drawing grid borders spec.md §4.8
// describes for the Table collaborator: a text-mode composite of
// box-drawing glyphs when the active character table supports them, or a
// graphics-mode composite of bitmap rules and text verticals otherwise.
package border

import (
	"escp2render/internal/charset"
	"escp2render/internal/node"
)

// Position discriminates which row of a grid a border belongs to, since
// the corner and junction glyphs differ at the top, middle, and bottom.
type Position int

const (
	Top Position = iota
	Middle
	Bottom
)

// Glyphs names the eleven box-drawing characters a border composite
// needs. DefaultGlyphs is the light single-line set spec.md §4.8 and
// internal/charset's box-glyph table both center on.
type Glyphs struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	TeeLeft, TeeRight       rune
	TeeTop, TeeBottom       rune
	Cross                   rune
	Horizontal, Vertical    rune
}

// DefaultGlyphs is the single-line box-drawing set (U+2500 family).
var DefaultGlyphs = Glyphs{
	TopLeft: '┌', TopRight: '┐',
	BottomLeft: '└', BottomRight: '┘',
	TeeLeft: '├', TeeRight: '┤',
	TeeTop: '┬', TeeBottom: '┴',
	Cross:      '┼',
	Horizontal: '─', Vertical: '│',
}

// SupportsGlyphs reports whether the given character table can render
// DefaultGlyphs' box-drawing characters natively.
func SupportsGlyphs(table charset.Table) bool {
	return charset.HasBoxGlyphs(table)
}

// Row builds one border row — top, middle (between data rows), or bottom
// — as a single flex-row container whose children's widths exactly match
// columnWidths, satisfying the alignment invariant that column k's
// vertical glyph sits at the same x in every row: every cell has a fixed
// dots width that serves as its basis and no flex-grow, so free space is
// never distributed into it.
//
// graphicsMode selects bitmap-drawn horizontal segments instead of
// repeated fill characters. Corners and junctions are text glyphs in both
// modes; they are not drawn as bitmaps. Verticals also stay text glyphs.
func Row(pos Position, columnWidths []int, g Glyphs, graphicsMode bool) *node.Container {
	left, right, junction := cornersFor(pos, g)
	row := node.NewFlex(node.Row)
	row.Children = append(row.Children, borderGlyph(left))
	for i, w := range columnWidths {
		row.Children = append(row.Children, horizontalSegment(w, g.Horizontal, graphicsMode))
		if i < len(columnWidths)-1 {
			row.Children = append(row.Children, borderGlyph(junction))
		}
	}
	row.Children = append(row.Children, borderGlyph(right))
	return row
}

func cornersFor(pos Position, g Glyphs) (left, right, junction rune) {
	switch pos {
	case Top:
		return g.TopLeft, g.TopRight, g.TeeTop
	case Bottom:
		return g.BottomLeft, g.BottomRight, g.TeeBottom
	default:
		return g.TeeLeft, g.TeeRight, g.Cross
	}
}

// borderGlyph is a single-character cell. Corners and T-junctions always
// render as text glyphs — they have no "length" to draw as a bitmap rule
// — even when the row's horizontal segments are graphics-mode.
func borderGlyph(r rune) *node.Text {
	return &node.Text{Content: string(r), Align: node.AlignCenter}
}

// horizontalSegment is a column-width-wide horizontal rule: a repeated
// fill-character Line in text mode, or a bitmap-drawn Line in graphics
// mode (spec.md §4.8).
func horizontalSegment(width int, fill rune, graphicsMode bool) *node.Line {
	return &node.Line{
		Direction: node.Horizontal, Length: node.Dots(width),
		FillChar: fill, GraphicsMode: graphicsMode,
	}
}

// VerticalSeparator is the single-character vertical rule used between
// table columns. It is always a text glyph — spec.md §4.8 keeps verticals
// as text even in graphics mode.
func VerticalSeparator(g Glyphs) *node.Text {
	return &node.Text{Content: string(g.Vertical)}
}
