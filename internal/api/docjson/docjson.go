// Package docjson decodes the JSON document bodies accepted by
// POST /v1/render and POST /v1/print into an internal/node tree. The
// teacher's handler layer binds requests into flat structs
// (PrintRequest, PaymentRequest) with ShouldBindJSON; a layout document
// is recursive, so this package binds into one discriminated-union DTO
// per node and walks it into the node.Node tree the layout core expects.
package docjson

import (
	"fmt"

	"escp2render/internal/node"
)

// Doc is the wire representation of a single node.Node. Kind selects
// which of the other fields apply; unused fields are omitted by callers
// and ignored by ToNode.
type Doc struct {
	Kind string `json:"kind"`

	// stack / flex / grid
	Direction string          `json:"direction,omitempty"`
	Gap       int             `json:"gap,omitempty"`
	Align     string          `json:"align,omitempty"`
	VAlign    string          `json:"valign,omitempty"`
	Justify   string          `json:"justify,omitempty"`
	Width     *DimDoc         `json:"width,omitempty"`
	Height    *DimDoc         `json:"height,omitempty"`
	Padding   *SidesDoc       `json:"padding,omitempty"`
	Margin    *SidesDoc       `json:"margin,omitempty"`
	Style     *StyleDoc       `json:"style,omitempty"`
	Children  []Doc           `json:"children,omitempty"`

	// text
	Content string `json:"content,omitempty"`

	// spacer
	FlexGrow bool `json:"flex_grow,omitempty"`

	// line
	Length       *DimDoc `json:"length,omitempty"`
	FillChar     string  `json:"fill_char,omitempty"`
	GraphicsMode bool    `json:"graphics_mode,omitempty"`
}

// DimDoc is the wire form of node.Dim: exactly one of Dots/Percent is set
// depending on Kind.
type DimDoc struct {
	Kind    string  `json:"kind"` // "dots", "auto", "fill", "percent"
	Dots    int     `json:"dots,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

// SidesDoc is the wire form of node.Sides.
type SidesDoc struct {
	Top    int `json:"top,omitempty"`
	Right  int `json:"right,omitempty"`
	Bottom int `json:"bottom,omitempty"`
	Left   int `json:"left,omitempty"`
}

// StyleDoc is the wire form of node.Style: every field is a pointer so
// an absent key means "inherit", matching node.Style's own semantics.
type StyleDoc struct {
	Bold         *bool   `json:"bold,omitempty"`
	Italic       *bool   `json:"italic,omitempty"`
	Underline    *bool   `json:"underline,omitempty"`
	DoubleStrike *bool   `json:"double_strike,omitempty"`
	DoubleWidth  *bool   `json:"double_width,omitempty"`
	DoubleHeight *bool   `json:"double_height,omitempty"`
	Condensed    *bool   `json:"condensed,omitempty"`
	CPI          *int    `json:"cpi,omitempty"`
}

// ToNode walks d into a node.Node tree, returning an error naming the
// offending node kind if d (or a descendant) uses an unrecognized kind.
func (d *Doc) ToNode() (node.Node, error) {
	switch d.Kind {
	case "stack", "flex", "grid":
		return d.toContainer()
	case "text":
		return &node.Text{Content: d.Content, Align: hAlign(d.Align), Style: d.toStyle()}, nil
	case "spacer":
		return &node.Spacer{Width: d.toDim(d.Width), Height: d.toDim(d.Height), FlexGrow: d.FlexGrow}, nil
	case "line":
		return &node.Line{
			Direction:    direction(d.Direction),
			Length:       d.toDim(d.Length),
			FillChar:     fillChar(d.FillChar),
			Style:        d.toStyle(),
			GraphicsMode: d.GraphicsMode,
		}, nil
	default:
		return nil, fmt.Errorf("docjson: unknown node kind %q", d.Kind)
	}
}

func (d *Doc) toContainer() (node.Node, error) {
	children := make([]node.Node, 0, len(d.Children))
	for i := range d.Children {
		child, err := d.Children[i].ToNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	kind := node.KindStack
	switch d.Kind {
	case "flex":
		kind = node.KindFlex
	case "grid":
		kind = node.KindGrid
	}

	width, height := node.Auto(), node.Auto()
	if d.Width != nil {
		width = d.toDim(d.Width)
	}
	if d.Height != nil {
		height = d.toDim(d.Height)
	}

	return &node.Container{
		KindValue: kind,
		Direction: direction(d.Direction),
		Gap:       d.Gap,
		Align:     hAlign(d.Align),
		VAlign:    vAlign(d.VAlign),
		Justify:   justify(d.Justify),
		Width:     width,
		Height:    height,
		Padding:   toSides(d.Padding),
		Margin:    toSides(d.Margin),
		Style:     d.toStyle(),
		Children:  children,
	}, nil
}

func (d *Doc) toDim(dd *DimDoc) node.Dim {
	if dd == nil {
		return node.Auto()
	}
	switch dd.Kind {
	case "dots":
		return node.Dots(dd.Dots)
	case "fill":
		return node.Fill()
	case "percent":
		return node.Percent(dd.Percent)
	default:
		return node.Auto()
	}
}

func (d *Doc) toStyle() node.Style {
	if d.Style == nil {
		return node.Style{}
	}
	s := node.Style{
		Bold:         d.Style.Bold,
		Italic:       d.Style.Italic,
		Underline:    d.Style.Underline,
		DoubleStrike: d.Style.DoubleStrike,
		DoubleWidth:  d.Style.DoubleWidth,
		DoubleHeight: d.Style.DoubleHeight,
		Condensed:    d.Style.Condensed,
	}
	if d.Style.CPI != nil {
		s.CPI = node.CPIPtr(node.CPI(*d.Style.CPI))
	}
	return s
}

func toSides(s *SidesDoc) node.Sides {
	if s == nil {
		return node.Sides{}
	}
	return node.Sides{Top: s.Top, Right: s.Right, Bottom: s.Bottom, Left: s.Left}
}

func direction(s string) node.Direction {
	if s == "row" {
		return node.Row
	}
	return node.Column
}

func hAlign(s string) node.HAlign {
	switch s {
	case "center":
		return node.AlignCenter
	case "right":
		return node.AlignRight
	default:
		return node.AlignLeft
	}
}

func vAlign(s string) node.VAlign {
	switch s {
	case "middle":
		return node.AlignMiddle
	case "bottom":
		return node.AlignBottom
	default:
		return node.AlignTop
	}
}

func justify(s string) node.Justify {
	switch s {
	case "center":
		return node.JustifyCenter
	case "end":
		return node.JustifyEnd
	case "space-between":
		return node.JustifySpaceBetween
	case "space-around":
		return node.JustifySpaceAround
	default:
		return node.JustifyStart
	}
}

func fillChar(s string) rune {
	for _, r := range s {
		return r
	}
	return '-'
}
