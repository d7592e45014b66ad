package node

// Kind discriminates the layout-node variants. Six are static and reach
// the layout core; four more mark dynamic nodes (template/conditional/
// switch/each) that must be rewritten to static nodes by an upstream
// resolver before the tree reaches Measure — spec.md §4.4 requires the
// core to fail fast if one of them slips through.
type Kind int

const (
	KindStack Kind = iota
	KindFlex
	KindGrid
	KindText
	KindSpacer
	KindLine

	KindTemplate
	KindConditional
	KindSwitch
	KindEach
)

// Static reports whether k is one of the six variants the layout core
// accepts.
func (k Kind) Static() bool {
	return k == KindStack || k == KindFlex || k == KindGrid ||
		k == KindText || k == KindSpacer || k == KindLine
}

// String names a Kind for error messages.
func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindFlex:
		return "flex"
	case KindGrid:
		return "grid"
	case KindText:
		return "text"
	case KindSpacer:
		return "spacer"
	case KindLine:
		return "line"
	case KindTemplate:
		return "template"
	case KindConditional:
		return "conditional"
	case KindSwitch:
		return "switch"
	case KindEach:
		return "each"
	default:
		return "unknown"
	}
}

// Node is any layout-node variant, static or dynamic.
type Node interface {
	Kind() Kind
}

// Direction is a container or line's primary axis.
type Direction int

const (
	Column Direction = iota
	Row
	Horizontal = Row
	Vertical   = Column
)

// HAlign is horizontal child alignment within a column-direction container.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical child alignment within a row-direction container.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Justify is main-axis distribution of children within a container.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Container is a stack/flex/grid node: an ordered list of children laid
// out along Direction with Gap between them, CSS-flexbox-like alignment
// and justification, and optional width/height/padding/margin.
//
// Grid is decomposed to a column-of-rows per spec.md §4.5: a KindGrid
// container's Children are themselves KindStack(Row) containers.
type Container struct {
	KindValue   Kind
	Direction   Direction
	Gap         int
	Align       HAlign
	VAlign      VAlign
	Justify     Justify
	Width       Dim
	Height      Dim
	Padding     Sides
	Margin      Sides
	Style       Style
	Children    []Node
}

func (c *Container) Kind() Kind { return c.KindValue }

// NewStack builds a stack container (KindStack) along direction dir.
func NewStack(dir Direction, children ...Node) *Container {
	return &Container{KindValue: KindStack, Direction: dir, Width: Auto(), Height: Auto(), Children: children}
}

// NewFlex builds a flex container (KindFlex) along direction dir.
func NewFlex(dir Direction, children ...Node) *Container {
	return &Container{KindValue: KindFlex, Direction: dir, Width: Auto(), Height: Auto(), Children: children}
}

// NewGrid builds a grid container decomposed into rows, each itself a
// KindStack(Row) container built by the caller.
func NewGrid(rows ...Node) *Container {
	return &Container{KindValue: KindGrid, Direction: Column, Width: Auto(), Height: Auto(), Children: rows}
}

// Text is a leaf carrying a code-page-independent string, alignment, and
// inherited style.
type Text struct {
	Content string
	Align   HAlign
	Style   Style
}

func (t *Text) Kind() Kind { return KindText }

// Spacer is a leaf with either a fixed width/height or a flex-grow flag
// that claims remaining space in its flex parent.
type Spacer struct {
	Width    Dim
	Height   Dim
	FlexGrow bool
}

func (s *Spacer) Kind() Kind { return KindSpacer }

// Line is a leaf that draws a horizontal or vertical rule of a repeated
// fill character, or — when GraphicsMode is set on a horizontal rule — a
// bitmap-drawn rule instead, for code pages lacking box-drawing glyphs
// (spec.md §4.8's border graphics mode).
type Line struct {
	Direction    Direction
	Length       Dim // Dots, Fill, or Auto
	FillChar     rune
	Style        Style
	GraphicsMode bool
}

func (l *Line) Kind() Kind { return KindLine }

// Dynamic marks a template/conditional/switch/each node that has not yet
// been resolved to static nodes. The layout core only ever inspects its
// Kind(); any other field is resolver-specific and irrelevant to us.
type Dynamic struct {
	DynKind Kind
}

func (d *Dynamic) Kind() Kind { return d.DynKind }
