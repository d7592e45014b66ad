package layout

import "escp2render/internal/node"

// Placed is a Measured node with its absolute (x, y) in the document's dot
// coordinate system, rather than a box relative to its parent.
type Placed struct {
	Node     node.Node
	Style    node.Resolved
	X, Y     int
	Width    int
	Height   int
	Children []Placed
}

// Position walks a Measured tree top-down, converting every box's
// parent-relative (x,y) into absolute document coordinates. originX/originY
// is the document-space position of root's own box origin (typically the
// paper's top-left content origin after margins).
func Position(m Measured, originX, originY int) Placed {
	return position(m, originX, originY)
}

func position(m Measured, parentAbsX, parentAbsY int) Placed {
	absX := parentAbsX + m.Box.X
	absY := parentAbsY + m.Box.Y
	p := Placed{
		Node: m.Node, Style: m.Style,
		X: absX, Y: absY,
		Width: m.Box.W, Height: m.Box.H,
	}
	if len(m.Children) > 0 {
		p.Children = make([]Placed, len(m.Children))
		for i, c := range m.Children {
			p.Children[i] = position(c, absX, absY)
		}
	}
	return p
}
