// Package layout implements the three-phase measure/position pipeline
// spec.md §4.4–§4.6 describes: style resolution and intrinsic sizing,
// flex/stack/grid distribution via internal/flex, and absolute-coordinate
// assignment. Render (§4.7) consumes this package's output but lives
// separately in internal/render, mirroring the teacher's layered
// handler → service → repository separation of concerns.
package layout

import (
	"escp2render/internal/charset"
	"escp2render/internal/errs"
	"escp2render/internal/flex"
	"escp2render/internal/node"
)

// DefaultLineSpacingDots is the intrinsic height of one text line at the
// printer's default 1/6-inch line spacing (60 dots at 360 DPI). A caller
// that has set a different line spacing should measure with that value
// instead; the layout core does not read printer state.
const DefaultLineSpacingDots = 60

// Measured is a node paired with its resolved style and the box the flex
// solver assigned it — both size and (parent-relative) position, since
// internal/flex computes them together. Position() turns the relative
// coordinates into absolute ones; Measure never mutates node.Node values.
type Measured struct {
	Node     node.Node
	Style    node.Resolved
	Box      flex.Box
	Children []Measured
}

// shell pairs each node with its resolved style while the StyleRecord
// tree is being built, so Measure can zip the solver's BoxTree back onto
// the original nodes without re-walking them.
type shell struct {
	node     node.Node
	style    node.Resolved
	children []shell
}

// Measure resolves tree into a Measured tree within the given available
// width/height, given the caller's initial (root) style. It fails fast
// with an UnresolvedDynamicNode error if any dynamic node is present.
func Measure(tree node.Node, availWidth, availHeight int, rootStyle node.Resolved) (Measured, error) {
	record, sh, err := build(tree, rootStyle, true)
	if err != nil {
		return Measured{}, err
	}
	boxes := flex.DefaultSolver{}.Solve(record, flex.Constraints{
		AvailableWidth:  availWidth,
		AvailableHeight: availHeight,
	})
	return zip(sh, boxes), nil
}

func zip(sh shell, box flex.BoxTree) Measured {
	m := Measured{Node: sh.node, Style: sh.style, Box: box.Box}
	if len(sh.children) > 0 {
		m.Children = make([]Measured, len(sh.children))
		for i, c := range sh.children {
			m.Children[i] = zip(c, box.Children[i])
		}
	}
	return m
}

func toFlexDim(d node.Dim) flex.Dim {
	switch d.Kind {
	case node.DimDots:
		return flex.Dim{Kind: flex.DimDots, Dots: d.Dots}
	case node.DimFill:
		return flex.Dim{Kind: flex.DimFill}
	case node.DimPercent:
		return flex.Dim{Kind: flex.DimPercent, Percent: d.Percent}
	default:
		return flex.Dim{Kind: flex.DimAuto}
	}
}

func toFlexSides(s node.Sides) flex.Sides {
	return flex.Sides{Top: s.Top, Right: s.Right, Bottom: s.Bottom, Left: s.Left}
}

func toFlexJustify(j node.Justify) flex.Justify {
	switch j {
	case node.JustifyCenter:
		return flex.JustifyCenter
	case node.JustifyEnd:
		return flex.JustifyEnd
	case node.JustifySpaceBetween:
		return flex.JustifySpaceBetween
	case node.JustifySpaceAround:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyStart
	}
}

// build walks n, merging inherited style and producing both the flex
// StyleRecord (for the solver) and the parallel shell (for zip). rowMain
// is true when n's parent lays out along Row (so n's Width is the main
// axis); it is irrelevant for the root call.
func build(n node.Node, parentStyle node.Resolved, rowMain bool) (flex.StyleRecord, shell, error) {
	if !n.Kind().Static() {
		return flex.StyleRecord{}, shell{}, errs.NewUnresolvedDynamicNode(n.Kind().String())
	}

	switch v := n.(type) {
	case *node.Container:
		style := v.Style.Merge(parentStyle)
		isRow := v.Direction == node.Row
		alignFrac := hAlignFrac(v.Align)
		if isRow {
			alignFrac = vAlignFrac(v.VAlign)
		}
		rec := flex.StyleRecord{
			Direction: toFlexDirection(v.Direction),
			Justify:   toFlexJustify(v.Justify),
			AlignFrac: alignFrac,
			Gap:       v.Gap,
			Padding:   toFlexSides(v.Padding),
			Margin:    toFlexSides(v.Margin),
			Width:     toFlexDim(v.Width),
			Height:    toFlexDim(v.Height),
			FlexBasis: -1,
		}
		sh := shell{node: n, style: style}
		for _, child := range v.Children {
			childRec, childShell, err := build(child, style, isRow)
			if err != nil {
				return flex.StyleRecord{}, shell{}, err
			}
			applyFillGrow(&childRec, child, isRow)
			rec.Children = append(rec.Children, childRec)
			sh.children = append(sh.children, childShell)
		}
		return rec, sh, nil

	case *node.Text:
		style := v.Style.Merge(parentStyle)
		baseCPI, forcedCondensed := style.CPI.Base()
		w := charset.Width(v.Content, charset.WidthOptions{
			CPI:         int(baseCPI),
			Condensed:   style.Condensed || forcedCondensed,
			DoubleWidth: style.DoubleWidth,
		})
		rec := flex.StyleRecord{
			Width:          flex.Dim{Kind: flex.DimDots, Dots: w},
			Height:         flex.Dim{Kind: flex.DimDots, Dots: DefaultLineSpacingDots},
			FlexBasis:      -1,
			IntrinsicWidth: w, IntrinsicHeight: DefaultLineSpacingDots,
			MinWidth: w, MinHeight: DefaultLineSpacingDots,
		}
		return rec, shell{node: n, style: style}, nil

	case *node.Spacer:
		rec := flex.StyleRecord{Width: toFlexDim(v.Width), Height: toFlexDim(v.Height), FlexBasis: -1}
		if v.FlexGrow {
			rec.FlexGrow = 1
			rec.FlexBasis = 0
		}
		return rec, shell{node: n, style: parentStyle}, nil

	case *node.Line:
		style := v.Style.Merge(parentStyle)
		w, h := 1, 1
		switch v.Direction {
		case node.Horizontal:
			if v.Length.Kind == node.DimDots {
				w = v.Length.Dots
			}
		default:
			if v.Length.Kind == node.DimDots {
				h = v.Length.Dots
			}
		}
		rec := flex.StyleRecord{
			Width: toFlexDim(widthDimForLine(v)), Height: toFlexDim(heightDimForLine(v)),
			FlexBasis: -1, IntrinsicWidth: w, IntrinsicHeight: h,
		}
		return rec, shell{node: n, style: style}, nil

	default:
		return flex.StyleRecord{}, shell{}, errs.NewInternal("unrecognized static node type")
	}
}

func widthDimForLine(l *node.Line) node.Dim {
	if l.Direction == node.Horizontal {
		return l.Length
	}
	return node.Dots(1)
}

func heightDimForLine(l *node.Line) node.Dim {
	if l.Direction == node.Horizontal {
		return node.Dots(1)
	}
	return l.Length
}

// applyFillGrow implements spec.md §4.5's "width/height='fill' sets the
// child's flex-grow to 1 and flex-basis to 0": Fill is about the child's
// relation to its parent's *main* axis, which only the parent (not the
// child itself) knows.
func applyFillGrow(rec *flex.StyleRecord, n node.Node, parentIsRow bool) {
	mainDim := mainAxisDim(n, parentIsRow)
	if mainDim.Kind == node.DimFill {
		rec.FlexGrow = 1
		rec.FlexBasis = 0
	}
}

func mainAxisDim(n node.Node, parentIsRow bool) node.Dim {
	switch v := n.(type) {
	case *node.Container:
		if parentIsRow {
			return v.Width
		}
		return v.Height
	case *node.Spacer:
		if parentIsRow {
			return v.Width
		}
		return v.Height
	case *node.Line:
		if parentIsRow {
			return widthDimForLine(v)
		}
		return heightDimForLine(v)
	default:
		return node.Auto()
	}
}

func toFlexDirection(d node.Direction) flex.Direction {
	if d == node.Row {
		return flex.Row
	}
	return flex.Column
}

func hAlignFrac(a node.HAlign) float64 {
	switch a {
	case node.AlignCenter:
		return 0.5
	case node.AlignRight:
		return 1
	default:
		return 0
	}
}

func vAlignFrac(a node.VAlign) float64 {
	switch a {
	case node.AlignMiddle:
		return 0.5
	case node.AlignBottom:
		return 1
	default:
		return 0
	}
}
