package docjson

import (
	"testing"

	"escp2render/internal/node"
)

func TestToNodeBuildsTextLeaf(t *testing.T) {
	d := Doc{Kind: "text", Content: "Hi", Align: "center"}
	n, err := d.ToNode()
	if err != nil {
		t.Fatalf("ToNode: %v", err)
	}
	text, ok := n.(*node.Text)
	if !ok {
		t.Fatalf("expected *node.Text, got %T", n)
	}
	if text.Content != "Hi" || text.Align != node.AlignCenter {
		t.Fatalf("unexpected text node: %+v", text)
	}
}

func TestToNodeBuildsContainerWithChildren(t *testing.T) {
	d := Doc{
		Kind:      "flex",
		Direction: "row",
		Gap:       10,
		Width:     &DimDoc{Kind: "fill"},
		Children: []Doc{
			{Kind: "text", Content: "left"},
			{Kind: "spacer", FlexGrow: true},
			{Kind: "text", Content: "right"},
		},
	}
	n, err := d.ToNode()
	if err != nil {
		t.Fatalf("ToNode: %v", err)
	}
	c, ok := n.(*node.Container)
	if !ok {
		t.Fatalf("expected *node.Container, got %T", n)
	}
	if c.Kind() != node.KindFlex || c.Direction != node.Row || c.Gap != 10 {
		t.Fatalf("unexpected container: %+v", c)
	}
	if len(c.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(c.Children))
	}
	if c.Width.Kind != node.DimFill {
		t.Fatalf("expected fill width, got %+v", c.Width)
	}
}

func TestToNodeRejectsUnknownKind(t *testing.T) {
	d := Doc{Kind: "bogus"}
	if _, err := d.ToNode(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestToNodeAppliesStyleOverrides(t *testing.T) {
	bold := true
	cpi := 12
	d := Doc{Kind: "text", Content: "x", Style: &StyleDoc{Bold: &bold, CPI: &cpi}}
	n, err := d.ToNode()
	if err != nil {
		t.Fatalf("ToNode: %v", err)
	}
	text := n.(*node.Text)
	if text.Style.Bold == nil || !*text.Style.Bold {
		t.Fatal("expected bold override to carry through")
	}
	if text.Style.CPI == nil || *text.Style.CPI != node.CPI12 {
		t.Fatal("expected cpi override to carry through")
	}
}

func TestToNodeBuildsLineWithFillChar(t *testing.T) {
	d := Doc{Kind: "line", Direction: "row", FillChar: "=", Length: &DimDoc{Kind: "dots", Dots: 100}}
	n, err := d.ToNode()
	if err != nil {
		t.Fatalf("ToNode: %v", err)
	}
	line := n.(*node.Line)
	if line.FillChar != '=' || line.Length.Dots != 100 {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestToNodePropagatesChildError(t *testing.T) {
	d := Doc{Kind: "stack", Children: []Doc{{Kind: "nope"}}}
	if _, err := d.ToNode(); err == nil {
		t.Fatal("expected child error to propagate")
	}
}
