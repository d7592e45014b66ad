package render

import (
	"bytes"
	"testing"

	"escp2render/internal/charset"
	"escp2render/internal/layout"
	"escp2render/internal/node"
	"escp2render/internal/paper"
)

func testPaper() paper.Config {
	return paper.Config{
		WidthInches: 8.5, HeightInches: 11,
		Margins: paper.Margins{Top: 90, Bottom: 90, Left: 90, Right: 90},
	}
}

// TestSingleBoldLineAtOrigin reproduces spec.md §8 scenario (a).
func TestSingleBoldLineAtOrigin(t *testing.T) {
	p := testPaper()
	tree := node.NewStack(node.Column, &node.Text{
		Content: "Hi",
		Style:   node.Style{Bold: node.BoolPtr(true), CPI: node.CPIPtr(node.CPI10)},
	})
	m, err := layout.Measure(tree, p.ContentWidthDots(), p.ContentHeightDots(), node.Resolved{CPI: node.CPI10})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	placed := layout.Position(m, p.Margins.Left, p.Margins.Top)
	items := Flatten(placed)

	buf, _, err := Emit(items, Params{Charset: charset.USA, Table: charset.PC437, Paper: p}, node.Resolved{CPI: node.CPI10})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if !bytes.HasPrefix(buf, []byte{0x1B, 0x40}) {
		t.Fatalf("stream does not begin with ESC @: % x", buf[:2])
	}
	if !bytes.Contains(buf, []byte{0x1B, 0x45}) {
		t.Errorf("stream does not contain bold-on (ESC E)")
	}
	if !bytes.Contains(buf, []byte{0x48, 0x69}) {
		t.Errorf("stream does not contain encoded \"Hi\"")
	}
	if buf[len(buf)-1] != 0x0C {
		t.Errorf("stream does not end with form feed, got %#x", buf[len(buf)-1])
	}
	// Bold-on must precede the text bytes.
	boldIdx := bytes.Index(buf, []byte{0x1B, 0x45})
	textIdx := bytes.Index(buf, []byte{0x48, 0x69})
	if boldIdx >= textIdx {
		t.Errorf("bold-on at %d does not precede text at %d", boldIdx, textIdx)
	}
}

// TestAdvanceOver255Splits reproduces spec.md §8 scenario (c): a 600-dot
// vertical delta splits into ESC J 255 + ESC J 45 (255*2 + 45*2 = 600).
func TestAdvanceOver255Splits(t *testing.T) {
	chunk, err := advanceVertical(600)
	if err != nil {
		t.Fatalf("advanceVertical: %v", err)
	}
	want := []byte{0x1B, 0x4A, 0xFF, 0x1B, 0x4A, 0x2D}
	if !bytes.Equal(chunk, want) {
		t.Errorf("advanceVertical(600) = % x, want % x", chunk, want)
	}
}

// TestAdvanceVerticalRoundsOddDeltaHalfEven covers spec.md §4.7 step 1's
// n = round((item.y-cursor_y)/2): a 7-dot delta is 3.5 units, which must
// round to 4 (half-even off an odd floor), not truncate to 3.
func TestAdvanceVerticalRoundsOddDeltaHalfEven(t *testing.T) {
	chunk, err := advanceVertical(7)
	if err != nil {
		t.Fatalf("advanceVertical: %v", err)
	}
	want := []byte{0x1B, 0x4A, 0x04}
	if !bytes.Equal(chunk, want) {
		t.Errorf("advanceVertical(7) = % x, want % x", chunk, want)
	}
}

func TestAdvanceVerticalSkipsNoOp(t *testing.T) {
	chunk, err := advanceVertical(0)
	if err != nil {
		t.Fatalf("advanceVertical: %v", err)
	}
	if len(chunk) != 0 {
		t.Errorf("advanceVertical(0) = % x, want empty", chunk)
	}
	chunk, err = advanceVertical(1) // rounds to 0 units, must not emit ESC J 0
	if err != nil {
		t.Fatalf("advanceVertical: %v", err)
	}
	if len(chunk) != 0 {
		t.Errorf("advanceVertical(1) = % x, want empty (no-op elided)", chunk)
	}
}

// TestPageBreakEmitsFormFeedAndResetsCursor reproduces spec.md §8's page
// break boundary: content whose y exceeds paper.height-margin.bottom
// starts a fresh page at (margin.left, margin.top).
func TestPageBreakEmitsFormFeedAndResetsCursor(t *testing.T) {
	p := testPaper()
	breakY := p.PageBreakY()
	items := []Item{
		{X: 90, Y: 100, Kind: ItemText, Text: "A"},
		{X: 90, Y: breakY + 50, Kind: ItemText, Text: "B"},
	}

	buf, finalY, err := Emit(items, Params{Charset: charset.USA, Table: charset.PC437, Paper: p}, node.Resolved{CPI: node.CPI10})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	idxA := bytes.Index(buf, []byte{0x41})
	idxFF := bytes.IndexByte(buf, 0x0C)
	idxB := bytes.Index(buf, []byte{0x42})
	if idxA < 0 || idxFF < 0 || idxB < 0 {
		t.Fatalf("expected A, a form feed, then B in stream: % x", buf)
	}
	if !(idxA < idxFF && idxFF < idxB) {
		t.Errorf("expected order A(%d) < FF(%d) < B(%d)", idxA, idxFF, idxB)
	}

	// The trailing FF is the second form feed in the stream.
	if bytes.Count(buf, []byte{0x0C}) != 2 {
		t.Errorf("expected exactly 2 form feeds (page break + trailing), got %d", bytes.Count(buf, []byte{0x0C}))
	}

	// The returned cursor stays in document-absolute coordinates across
	// the page reset, so callers chaining more content see item B's
	// original y, not its page-relative position.
	if wantFinalY := breakY + 50; finalY != wantFinalY {
		t.Errorf("finalY = %d, want %d", finalY, wantFinalY)
	}
}

func TestBackwardYIsInternalError(t *testing.T) {
	items := []Item{
		{X: 90, Y: 200, Kind: ItemText, Text: "B"},
		{X: 90, Y: 100, Kind: ItemText, Text: "A"},
	}
	p := testPaper()
	_, _, err := Emit(items, Params{Charset: charset.USA, Table: charset.PC437, Paper: p}, node.Resolved{CPI: node.CPI10})
	if err == nil {
		t.Fatal("expected an error for out-of-order items")
	}
}

func TestFlattenDropsContainersAndSpacers(t *testing.T) {
	tree := node.NewStack(node.Row,
		&node.Spacer{Width: node.Dots(10)},
		&node.Text{Content: "x", Style: node.Style{CPI: node.CPIPtr(node.CPI10)}},
	)
	m, err := layout.Measure(tree, 1000, 1000, node.Resolved{CPI: node.CPI10})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	placed := layout.Position(m, 0, 0)
	items := Flatten(placed)
	if len(items) != 1 {
		t.Fatalf("expected 1 flattened item, got %d", len(items))
	}
	if items[0].Kind != ItemText {
		t.Errorf("expected ItemText, got %v", items[0].Kind)
	}
}
