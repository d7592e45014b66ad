package node

// DimKind discriminates a width/height specification.
type DimKind int

const (
	DimDots DimKind = iota
	DimAuto
	DimFill
	DimPercent
)

// Dim is a width or height specification: an integer dot value, 'auto'
// (derive from content), 'fill' (claim the parent's remaining space), or
// a percentage of the containing block.
type Dim struct {
	Kind    DimKind
	Dots    int
	Percent float64 // only meaningful when Kind == DimPercent, in [0,1]
}

// Auto is the 'auto' width/height specification.
func Auto() Dim { return Dim{Kind: DimAuto} }

// Fill is the 'fill' width/height specification.
func Fill() Dim { return Dim{Kind: DimFill} }

// Dots is a fixed integer-dot width/height specification.
func Dots(d int) Dim { return Dim{Kind: DimDots, Dots: d} }

// Percent is a percentage-of-containing-block width/height specification;
// frac is a fraction in [0,1], not a 0-100 percentage.
func Percent(frac float64) Dim { return Dim{Kind: DimPercent, Percent: frac} }

// Sides is a four-sided integer-dot record used for both padding and
// margin.
type Sides struct {
	Top, Right, Bottom, Left int
}

// UniformSides expands a single scalar to all four sides (the shorthand
// expansion spec.md §4.4 requires).
func UniformSides(v int) Sides {
	return Sides{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns Left + Right.
func (s Sides) Horizontal() int { return s.Left + s.Right }

// Vertical returns Top + Bottom.
func (s Sides) Vertical() int { return s.Top + s.Bottom }
