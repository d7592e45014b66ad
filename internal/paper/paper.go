// Package paper describes the physical page geometry the render phase
// positions content within: size in inches, margins in dots, a configured
// lines-per-page, and the page-break y derived from height and bottom margin.
package paper

// DotsPerInch is the coordinate resolution used throughout the engine
// (spec.md §3's "Dot" unit).
const DotsPerInch = 360

// Margins is a four-sided dot record, analogous to node.Sides but kept
// separate since paper geometry is a public, caller-facing type distinct
// from the internal node-tree's padding/margin records.
type Margins struct {
	Top, Bottom, Left, Right int
}

// Config is the public paper configuration: physical size in inches (as
// the caller specifies it) plus margins already in dots.
type Config struct {
	WidthInches, HeightInches float64
	Margins                   Margins
	LinesPerPage              int
}

// WidthDots converts the configured width to dots at 360 DPI.
func (c Config) WidthDots() int { return int(c.WidthInches * DotsPerInch) }

// HeightDots converts the configured height to dots at 360 DPI.
func (c Config) HeightDots() int { return int(c.HeightInches * DotsPerInch) }

// ContentWidthDots is the horizontal space available between the left and
// right margins.
func (c Config) ContentWidthDots() int {
	return c.WidthDots() - c.Margins.Left - c.Margins.Right
}

// ContentHeightDots is the vertical space available between the top and
// bottom margins.
func (c Config) ContentHeightDots() int {
	return c.HeightDots() - c.Margins.Top - c.Margins.Bottom
}

// PageBreakY is the y coordinate, in document space, at which content must
// roll over to a fresh page (spec.md §8 boundary behavior).
func (c Config) PageBreakY() int {
	return c.HeightDots() - c.Margins.Bottom
}
