package sampledoc

import (
	"testing"

	"escp2render/internal/node"
)

func TestBuildBoldLineMatchesScenarioA(t *testing.T) {
	n, err := Build(BoldLine)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	stack, ok := n.(*node.Container)
	if !ok || stack.Kind() != node.KindStack {
		t.Fatalf("expected stack container, got %T", n)
	}
	if len(stack.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(stack.Children))
	}
	text, ok := stack.Children[0].(*node.Text)
	if !ok {
		t.Fatalf("expected text leaf, got %T", stack.Children[0])
	}
	if text.Content != "Hi" {
		t.Errorf("Content = %q, want %q", text.Content, "Hi")
	}
	if text.Style.Bold == nil || !*text.Style.Bold {
		t.Error("expected bold style override")
	}
	if text.Style.CPI == nil || *text.Style.CPI != node.CPI10 {
		t.Error("expected CPI10 style override")
	}
}

func TestBuildSubtotalMatchesScenarioB(t *testing.T) {
	n, err := Build(Subtotal)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	row, ok := n.(*node.Container)
	if !ok || row.Kind() != node.KindFlex {
		t.Fatalf("expected flex container, got %T", n)
	}
	if row.Width.Dots != 720 {
		t.Errorf("Width = %+v, want 720 dots", row.Width)
	}
	if len(row.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(row.Children))
	}
	label := row.Children[0].(*node.Text)
	if label.Content != "Subtotal:" {
		t.Errorf("label = %q", label.Content)
	}
	spacer := row.Children[1].(*node.Spacer)
	if !spacer.FlexGrow {
		t.Error("expected flex-grow spacer between columns")
	}
	money := row.Children[2].(*node.Text)
	if money.Content != "$10.00" {
		t.Errorf("money = %q, want %q", money.Content, "$10.00")
	}
	if money.Align != node.AlignRight {
		t.Error("expected right-aligned money column")
	}
}

func TestBuildRejectsUnknownScenario(t *testing.T) {
	if _, err := Build(Name("nope")); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}
