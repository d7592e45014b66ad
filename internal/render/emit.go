package render

import (
	"math"
	"strings"

	"escp2render/internal/bitmap"
	"escp2render/internal/charset"
	"escp2render/internal/errs"
	"escp2render/internal/escp"
	"escp2render/internal/flex"
	"escp2render/internal/node"
	"escp2render/internal/paper"
)

// verticalLineMode is the 24-pin graphics mode used to draw standalone
// vertical Line leaves (mode 33: 120 DPI, adjacent dots allowed), the same
// mode spec.md §4.8 names for border graphics-mode corners and rules.
const verticalLineMode = 33

// verticalLineSpacingN180 is the stripe line spacing spec.md §4.8 gives
// for graphics-mode rules: 24/180 inch, restored to 1/6 inch afterward.
const verticalLineSpacingN180 = 24

// Params bundles the document-global settings Emit needs beyond the item
// list itself: the active code page and international charset (set once
// for a document by the caller, not carried per-leaf in Resolved style),
// and the paper geometry used for cursor initialization and page breaks.
type Params struct {
	Charset charset.Charset
	Table   charset.Table
	Paper   paper.Config
}

// Emit walks items (already flattened and sorted by Flatten) and appends
// ESC/P2 bytes for every positioning, style-transition, and payload
// change, starting from the caller's initial style. It returns the full
// byte stream and the final cursor_y, so a caller may chain more content
// below.
func Emit(items []Item, p Params, initialStyle node.Resolved) ([]byte, int, error) {
	var buf []byte
	buf = append(buf, escp.Initialize()...)

	cursorX := p.Paper.Margins.Left
	cursorY := p.Paper.Margins.Top
	shadow := initialStyle
	pageBreakY := p.Paper.PageBreakY()
	pageYOffset := 0

	for _, item := range items {
		y := item.Y - pageYOffset

		// spec.md §8: cumulative y exceeding paper.height-margin.bottom
		// rolls content onto a fresh page at (margin.left, margin.top),
		// separated by FF.
		if y > pageBreakY {
			buf = append(buf, escp.FormFeed()...)
			pageYOffset += y - p.Paper.Margins.Top
			y = p.Paper.Margins.Top
			cursorX = p.Paper.Margins.Left
			cursorY = p.Paper.Margins.Top
		}

		if y > cursorY {
			delta := y - cursorY
			chunk, err := advanceVertical(delta)
			if err != nil {
				return nil, 0, err
			}
			buf = append(buf, chunk...)
			cursorY = y
		} else if y < cursorY {
			return nil, 0, errs.NewInternal("backward y: render items were not sorted ascending by (y, x)")
		}

		if abs(item.X-cursorX) > 1 {
			buf = append(buf, escp.CarriageReturn()...)
			units := int(math.Round(float64(item.X) / 6))
			hCmd, err := escp.AbsoluteHorizontal(units)
			if err != nil {
				return nil, 0, err
			}
			buf = append(buf, hCmd...)
			cursorX = item.X
		}

		diff, err := styleDiff(shadow, item.Style)
		if err != nil {
			return nil, 0, err
		}
		buf = append(buf, diff...)
		shadow = item.Style

		switch item.Kind {
		case ItemText:
			buf = append(buf, charset.Encode(item.Text, p.Charset, p.Table)...)
			cursorX = item.X + item.W

		case ItemLine:
			if item.LineDirection == node.Horizontal {
				var lineBytes []byte
				advanced := item.W
				if item.LineGraphicsMode {
					lineBytes, err = horizontalGraphicsLine(item.W)
					if err != nil {
						return nil, 0, err
					}
				} else {
					lineBytes, advanced = horizontalLine(item, p)
				}
				buf = append(buf, lineBytes...)
				cursorX = item.X + advanced
			} else {
				lineBytes, err := verticalLine(item)
				if err != nil {
					return nil, 0, err
				}
				buf = append(buf, lineBytes...)
				cursorY = y + item.H
			}
		}
	}

	buf = append(buf, escp.FormFeed()...)
	return buf, pageYOffset + cursorY, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// advanceVertical emits ESC J commands advancing a total of delta dots,
// converting to 1/180-inch units via n = round(delta/2) per spec.md §4.7
// step 1 (half-even, the same tie-break flex.RoundHalfEven uses for
// percentage-to-dot conversion), then splitting that unit count into
// chunks of at most 255 (the command's single-byte operand), skipping a
// no-op ESC J 0.
func advanceVertical(delta int) ([]byte, error) {
	var buf []byte
	remaining := flex.RoundHalfEven(float64(delta) / 2)
	for remaining > 0 {
		units := remaining
		if units > 255 {
			units = 255
		}
		cmd, err := escp.AdvanceVertical(units)
		if err != nil {
			return nil, err
		}
		buf = append(buf, cmd...)
		remaining -= units
	}
	return buf, nil
}

func horizontalLine(item Item, p Params) ([]byte, int) {
	baseCPI, forcedCondensed := item.Style.CPI.Base()
	opts := charset.WidthOptions{
		CPI:         int(baseCPI),
		Condensed:   item.Style.Condensed || forcedCondensed,
		DoubleWidth: item.Style.DoubleWidth,
	}
	charWidth := charset.Width(string(item.LineFillChar), opts)
	if charWidth <= 0 {
		return nil, 0
	}
	count := item.W / charWidth
	if count <= 0 {
		return nil, 0
	}
	text := strings.Repeat(string(item.LineFillChar), count)
	return charset.Encode(text, p.Charset, p.Table), count * charWidth
}

// horizontalGraphicsLine draws a horizontal rule of the given dot length
// (360 DPI, converted to the mode's 120-DPI columns) as a single 24-pin
// bit-image stripe with only its first pin row set —
// the graphics-mode border rule spec.md §4.8 calls for on code pages
// lacking box-drawing glyphs, reusing the same column-packing machinery
// the bitmap package already provides for arbitrary-width images.
func horizontalGraphicsLine(lengthDots int) ([]byte, error) {
	if lengthDots <= 0 {
		return nil, nil
	}
	mode, ok := bitmap.LookupMode(verticalLineMode)
	if !ok {
		return nil, errs.NewInternal("horizontal line graphics mode not found in mode table")
	}
	cols := lengthDots * mode.HorizontalDPI / paper.DotsPerInch
	if cols <= 0 {
		return nil, nil
	}
	img := &bitmap.Binary{Width: cols, Height: mode.Pins, Pix: make([]byte, cols*mode.Pins)}
	for x := 0; x < cols; x++ {
		img.Pix[x] = 255 // row 0 only: a thin one-pin-row rule
	}
	stripe := bitmap.PackStripe(img, mode, 0)
	return escp.BitImage(verticalLineMode, mode.BytesPerColumn, stripe)
}

// verticalLine draws a standalone vertical rule as 24-pin bit-image
// stripes, per spec.md §4.7's "bitmap call" for vertical lines.
func verticalLine(item Item) ([]byte, error) {
	mode, ok := bitmap.LookupMode(verticalLineMode)
	if !ok {
		return nil, errs.NewInternal("vertical line graphics mode not found in mode table")
	}
	stripeHeightDots := mode.Pins * 2 // 24/180 inch per stripe
	numStripes := (item.H + stripeHeightDots - 1) / stripeHeightDots
	if numStripes <= 0 {
		return nil, nil
	}
	img := &bitmap.Binary{
		Width:  1,
		Height: numStripes * mode.Pins,
		Pix:    make([]byte, numStripes*mode.Pins),
	}
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	stripes := bitmap.PackAll(img, mode)

	var buf []byte
	spacingCmd, err := escp.LineSpacingN180(verticalLineSpacingN180)
	if err != nil {
		return nil, err
	}
	buf = append(buf, spacingCmd...)
	for i, stripe := range stripes {
		cmd, err := escp.BitImage(verticalLineMode, mode.BytesPerColumn, stripe)
		if err != nil {
			return nil, err
		}
		buf = append(buf, cmd...)
		if i < len(stripes)-1 {
			buf = append(buf, escp.LineFeed()...)
		}
	}
	buf = append(buf, escp.LineSpacing16()...)
	return buf, nil
}
