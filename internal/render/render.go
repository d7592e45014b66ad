// Package render implements spec.md §4.7, the emit phase: flattening a
// positioned tree into paint order, then walking it while maintaining a
// cursor and a style shadow, appending ESC/P2 bytes for every transition.
package render

import (
	"sort"

	"escp2render/internal/layout"
	"escp2render/internal/node"
)

// ItemKind discriminates the leaf kinds that contribute output bytes.
// Containers and spacers never appear here — they contribute geometry
// only, per spec.md §4.7's "flatten" step.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemLine
)

// Item is one leaf in paint order: its final bounding box, resolved
// style, and enough of the source node to produce its payload bytes.
type Item struct {
	X, Y, W, H int
	Style      node.Resolved

	Kind             ItemKind
	Text             string
	LineDirection    node.Direction
	LineFillChar     rune
	LineGraphicsMode bool
}

// Flatten walks a Placed tree and returns its leaves stable-sorted by
// (y, x), so leaves at the same position keep document order, dropping
// containers and spacers (they carry geometry only).
func Flatten(p layout.Placed) []Item {
	var items []Item
	flatten(p, &items)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Y != items[j].Y {
			return items[i].Y < items[j].Y
		}
		return items[i].X < items[j].X
	})
	return items
}

func flatten(p layout.Placed, out *[]Item) {
	switch v := p.Node.(type) {
	case *node.Text:
		*out = append(*out, Item{
			X: p.X, Y: p.Y, W: p.Width, H: p.Height,
			Style: p.Style, Kind: ItemText, Text: v.Content,
		})
		return
	case *node.Line:
		*out = append(*out, Item{
			X: p.X, Y: p.Y, W: p.Width, H: p.Height,
			Style: p.Style, Kind: ItemLine,
			LineDirection: v.Direction, LineFillChar: v.FillChar,
			LineGraphicsMode: v.GraphicsMode,
		})
		return
	}
	for _, c := range p.Children {
		flatten(c, out)
	}
}
