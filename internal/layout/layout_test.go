package layout

import (
	"errors"
	"testing"

	"escp2render/internal/errs"
	"escp2render/internal/node"
)

func TestMeasureSingleTextLeaf(t *testing.T) {
	tree := node.NewStack(node.Column, &node.Text{Content: "Hi", Style: node.Style{CPI: node.CPIPtr(node.CPI10)}})
	m, err := Measure(tree, 1000, 1000, node.Resolved{CPI: node.CPI10})
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if len(m.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(m.Children))
	}
	// "Hi" at 10 CPI: base width 36 dots/char * 2 chars = 72.
	if got := m.Children[0].Box.W; got != 72 {
		t.Errorf("text width = %d, want 72", got)
	}
}

func TestMeasureRejectsUnresolvedDynamicNode(t *testing.T) {
	tree := node.NewStack(node.Column, &node.Dynamic{DynKind: node.KindConditional})
	_, err := Measure(tree, 1000, 1000, node.Resolved{CPI: node.CPI10})
	if err == nil {
		t.Fatal("expected an UnresolvedDynamicNode error")
	}
	var ud *errs.UnresolvedDynamicNode
	if !errors.As(err, &ud) {
		t.Fatalf("expected *errs.UnresolvedDynamicNode, got %T", err)
	}
	if ud.Kind != "conditional" {
		t.Errorf("Kind = %q, want conditional", ud.Kind)
	}
}

func TestPositionAccumulatesParentOrigin(t *testing.T) {
	tree := node.NewStack(node.Column,
		&node.Text{Content: "A", Style: node.Style{CPI: node.CPIPtr(node.CPI10)}},
		&node.Text{Content: "B", Style: node.Style{CPI: node.CPIPtr(node.CPI10)}},
	)
	m, err := Measure(tree, 1000, 1000, node.Resolved{CPI: node.CPI10})
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	placed := Position(m, 90, 90)
	if placed.X != 90 || placed.Y != 90 {
		t.Fatalf("root placed at (%d,%d), want (90,90)", placed.X, placed.Y)
	}
	if len(placed.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(placed.Children))
	}
	if placed.Children[0].Y != 90 {
		t.Errorf("first child Y = %d, want 90", placed.Children[0].Y)
	}
	secondWantY := 90 + DefaultLineSpacingDots
	if placed.Children[1].Y != secondWantY {
		t.Errorf("second child Y = %d, want %d", placed.Children[1].Y, secondWantY)
	}
}

func TestEmptyContainerIntrinsicSizeIsPaddingOnly(t *testing.T) {
	c := node.NewStack(node.Column)
	c.Padding = node.UniformSides(10)
	m, err := Measure(c, 1000, 1000, node.Resolved{})
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if m.Box.W != 20 || m.Box.H != 20 {
		t.Errorf("empty container box = %dx%d, want 20x20", m.Box.W, m.Box.H)
	}
}
