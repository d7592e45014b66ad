// Package flex implements the CSS-flexbox-like subset spec.md §4.5 and §6
// describe: row/column direction, gap, padding, grow/shrink distribution,
// and start/center/end/space-between/space-around justification.
//
// spec.md frames this as a call to an external collaborator — "any solver
// with CSS-flexbox semantics... satisfies this contract" — and the design
// notes allow implementing the subset directly rather than binding a
// native library. This package is that direct, pure-Go implementation: a
// Solver interface plus a DefaultSolver satisfying it, so a different
// implementation could be swapped in without touching the layout phases.
package flex

// StyleRecord is the flexbox-facing description of one node: a container's
// own layout parameters plus, for every child, the child's StyleRecord and
// its already-measured intrinsic size (spec.md §6's "tree-of-style-records").
type StyleRecord struct {
	Direction Direction
	Justify   Justify
	AlignFrac float64 // 0, 0.5, or 1 for start/center/end cross-axis alignment

	Gap     int
	Padding Sides
	Margin  Sides

	// Sizing. Width/Height describe the node's own box resolution; for a
	// child inside a flex parent, FlexGrow/FlexShrink/FlexBasis drive
	// distribution instead when non-zero/explicit.
	Width, Height Dim

	FlexGrow   float64
	FlexShrink float64 // 0 disables shrinking for this child
	FlexBasis  int     // -1 means "derive from the main-axis Width/Height" (intrinsic size when auto)

	IntrinsicWidth, IntrinsicHeight int
	MinWidth, MinHeight             int

	Children []StyleRecord
}

// Direction is the container's main axis.
type Direction int

const (
	Column Direction = iota
	Row
)

// Justify is main-axis distribution.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// DimKind mirrors node.DimKind without importing the node package, keeping
// flex a freestanding, swappable collaborator per spec.md §6.
type DimKind int

const (
	DimDots DimKind = iota
	DimAuto
	DimFill
	DimPercent
)

type Dim struct {
	Kind    DimKind
	Dots    int
	Percent float64
}

// Sides is a four-sided dot record (padding or margin).
type Sides struct{ Top, Right, Bottom, Left int }

func (s Sides) Horizontal() int { return s.Left + s.Right }
func (s Sides) Vertical() int   { return s.Top + s.Bottom }

// Box is an absolute (well, parent-content-box-relative) position and size.
type Box struct{ X, Y, W, H int }

// BoxTree pairs a node's own Box with its children's BoxTrees, relative to
// this node's own content-box origin (i.e. child.Box.X/Y already include
// this node's padding offset, but not this node's own X/Y).
type BoxTree struct {
	Box      Box
	Children []BoxTree
}

// Constraints bounds the space a root StyleRecord resolves within.
type Constraints struct {
	AvailableWidth, AvailableHeight int
}

// Solver maps a tree of style records and a constraint to a tree of boxes,
// the contract spec.md §6 specifies for the external flexbox collaborator.
type Solver interface {
	Solve(root StyleRecord, c Constraints) BoxTree
}
