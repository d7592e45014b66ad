package border

import (
	"testing"

	"escp2render/internal/charset"
	"escp2render/internal/layout"
	"escp2render/internal/node"
)

func TestSupportsGlyphsMatchesCharsetTable(t *testing.T) {
	if !SupportsGlyphs(charset.PC437) {
		t.Error("PC437 should support box glyphs")
	}
	if SupportsGlyphs(charset.Katakana) {
		t.Error("Katakana should not support box glyphs")
	}
}

// TestColumnAlignmentAcrossRows checks spec.md §4.8's alignment invariant:
// the k-th vertical border glyph's x-coordinate matches across the top,
// middle, and bottom rows of a table.
func TestColumnAlignmentAcrossRows(t *testing.T) {
	widths := []int{100, 150, 80}
	top := Row(Top, widths, DefaultGlyphs, false)
	mid := Row(Middle, widths, DefaultGlyphs, false)
	bot := Row(Bottom, widths, DefaultGlyphs, false)

	style := node.Resolved{CPI: node.CPI10}
	topX := junctionXs(t, top, style)
	midX := junctionXs(t, mid, style)
	botX := junctionXs(t, bot, style)

	if len(topX) != len(midX) || len(midX) != len(botX) {
		t.Fatalf("junction counts differ: top=%d mid=%d bot=%d", len(topX), len(midX), len(botX))
	}
	for i := range topX {
		if topX[i] != midX[i] || midX[i] != botX[i] {
			t.Errorf("junction %d x mismatch: top=%d mid=%d bot=%d", i, topX[i], midX[i], botX[i])
		}
	}
}

// junctionXs measures and positions a border row, returning the absolute
// x of every text leaf (the corner/junction glyph cells).
func junctionXs(t *testing.T, row *node.Container, style node.Resolved) []int {
	t.Helper()
	m, err := layout.Measure(row, 10000, 1000, style)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	placed := layout.Position(m, 0, 0)
	var xs []int
	var walk func(p layout.Placed)
	walk = func(p layout.Placed) {
		if _, ok := p.Node.(*node.Text); ok {
			xs = append(xs, p.X)
		}
		for _, c := range p.Children {
			walk(c)
		}
	}
	walk(placed)
	return xs
}
