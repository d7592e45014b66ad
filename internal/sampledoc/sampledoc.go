// Package sampledoc builds the literal document scenarios from spec.md
// §8 as node trees, so the HTTP API and the test suite can work from a
// known input without hand-building a tree inline at every call site.
package sampledoc

import (
	"fmt"

	"github.com/shopspring/decimal"

	"escp2render/internal/node"
)

// Name identifies one of the canned scenarios exposed by Build.
type Name string

const (
	// BoldLine is scenario (a): a single bold "Hi" at origin.
	BoldLine Name = "bold-line"
	// Subtotal is scenario (b): a two-column right-aligned money total.
	Subtotal Name = "subtotal"
)

// Build returns the node tree for name, or an error if name is not one
// of the known scenarios.
func Build(name Name) (node.Node, error) {
	switch name {
	case BoldLine:
		return boldLine(), nil
	case Subtotal:
		return subtotal(decimal.RequireFromString("10.00")), nil
	default:
		return nil, fmt.Errorf("sampledoc: unknown scenario %q", name)
	}
}

// boldLine builds spec.md §8 scenario (a): a stack with one bold "Hi"
// text leaf at 10 CPI.
func boldLine() node.Node {
	return node.NewStack(node.Column,
		&node.Text{
			Content: "Hi",
			Style:   node.Style{Bold: node.BoolPtr(true), CPI: node.CPIPtr(node.CPI10)},
		},
	)
}

// subtotal builds spec.md §8 scenario (b): a flex row with a label, a
// flex-grow spacer, and a right-aligned money amount formatted to two
// decimal places via decimal.Decimal so the amount never drifts from
// exact cents.
func subtotal(amount decimal.Decimal) node.Node {
	label := &node.Text{Content: "Subtotal:"}
	money := &node.Text{Content: "$" + amount.StringFixed(2), Align: node.AlignRight}
	spacer := &node.Spacer{FlexGrow: true}

	row := node.NewFlex(node.Row, label, spacer, money)
	row.Width = node.Dots(720)
	return row
}
