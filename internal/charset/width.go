package charset

import "unicode/utf8"

// WidthOptions carries the parameters that affect character advance,
// independent of the resolved style record (proportional spacing and
// inter-character space are not style fields per the data model — they
// are properties of the active font/printer mode).
type WidthOptions struct {
	CPI             int // 10, 12, 15, 17 (condensed), or 20
	Proportional    bool
	Condensed       bool
	DoubleWidth     bool
	InterCharSpace  int // dots, added to every character's advance
}

// baseCharWidth returns the monospace character width in dots at 360 DPI
// for a given CPI: 360/cpi.
func baseCharWidth(cpi int) int {
	if cpi <= 0 {
		return 36
	}
	return 360 / cpi
}

// condensedScale approximates the reference printer's condensed pitch
// (~17 CPI) as a 0.58 scale of the base 10-CPI width, per spec.md §4.2.
const condensedScale = 0.58

// proportionalGlyphWidth returns the advance for a single rune in
// proportional mode. Per spec.md's portability requirement the exact
// metrics are unspecified; this implementation guarantees the width never
// exceeds the monospace ideal and that ASCII letters stay within ±1 dot of
// it, by deriving a per-glyph scale from a coarse letter-width class.
func proportionalGlyphWidth(r rune, mono int) int {
	switch {
	case r == ' ':
		return mono * 2 / 5
	case r >= '0' && r <= '9':
		return mono * 4 / 5
	case r == '.' || r == ',' || r == '\'' || r == '!' || r == '|':
		return mono * 2 / 5
	case r == 'm' || r == 'M' || r == 'W' || r == 'w':
		return mono // full monospace width, the widest class
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return mono - 1 // within ±1 dot of the monospace ideal, as required
	default:
		return mono
	}
}

// Width computes the total dot-width of text when encoded under opts. It
// sums each character's advance (condensed-scaled or proportional as
// configured, then doubled if double-width is set) and adds
// InterCharSpace after every character's glyph width, regardless of mode —
// an explicit resolution of the under-specified interaction spec.md §9
// flags.
func Width(text string, opts WidthOptions) int {
	mono := baseCharWidth(opts.CPI)
	if opts.Condensed {
		mono = int(float64(baseCharWidth(10)) * condensedScale)
	}

	total := 0
	for _, r := range text {
		var w int
		if opts.Proportional && !opts.Condensed {
			w = proportionalGlyphWidth(r, mono)
		} else {
			w = mono
		}
		if opts.DoubleWidth {
			w *= 2
		}
		total += w + opts.InterCharSpace
	}
	return total
}

// RuneCount is a small helper used by the wrap algorithm to count
// characters (not bytes) for break-point bookkeeping.
func RuneCount(s string) int { return utf8.RuneCountInString(s) }
