package escp

import (
	"sort"

	"escp2render/internal/errs"
)

// le16 splits a non-negative value into its little-endian (low, high) byte
// pair, as every two-byte ESC/P2 parameter demands.
func le16(value int) (lo, hi byte) {
	return byte(value & 0xFF), byte((value >> 8) & 0xFF)
}

// twosComplement16 encodes a signed relative offset as a two's-complement
// 16-bit little-endian pair.
func twosComplement16(value int) (lo, hi byte) {
	return le16(int(uint16(int16(value))))
}

func byteRange(param string, value int) error {
	return errs.CheckRange(param, value, 0, 255)
}

// LineSpacingN180 selects n/180-inch line spacing (ESC 3 n).
func LineSpacingN180(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x33, byte(n)}, nil
}

// LineSpacingN60 selects n/60-inch line spacing (ESC A n).
func LineSpacingN60(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x41, byte(n)}, nil
}

// LineSpacingN360 selects n/360-inch line spacing (ESC + n).
func LineSpacingN360(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x2B, byte(n)}, nil
}

// AbsoluteHorizontal positions the print head at an absolute column,
// expressed in the printer's currently selected horizontal unit
// (ESC $ nL nH).
func AbsoluteHorizontal(units int) ([]byte, error) {
	if err := errs.CheckRange("units", units, 0, 65535); err != nil {
		return nil, err
	}
	lo, hi := le16(units)
	return []byte{ESC, 0x24, lo, hi}, nil
}

// RelativeHorizontal moves the print head by a signed relative offset,
// encoded as two's-complement (ESC \ nL nH).
func RelativeHorizontal(offset int) ([]byte, error) {
	if err := errs.CheckRange("offset", offset, -32768, 32767); err != nil {
		return nil, err
	}
	lo, hi := twosComplement16(offset)
	return []byte{ESC, 0x5C, lo, hi}, nil
}

// AdvanceVertical advances n/180 inch (ESC J n). n must fit a single byte;
// callers wanting more than 255/180 inch must issue repeated calls (see
// the render phase, which enforces the >510-dot splitting rule).
func AdvanceVertical(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x4A, byte(n)}, nil
}

// ReverseFeed reverse-feeds the paper by units/180 inch (ESC j nL nH).
func ReverseFeed(units int) ([]byte, error) {
	if err := errs.CheckRange("units", units, 0, 65535); err != nil {
		return nil, err
	}
	lo, hi := le16(units)
	return []byte{ESC, 0x6A, lo, hi}, nil
}

// PageLengthLines sets the page length in lines, 1-127 (ESC C n).
func PageLengthLines(n int) ([]byte, error) {
	if err := errs.CheckRange("n", n, 1, 127); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x43, byte(n)}, nil
}

// PageLengthInches sets the page length in inches, 1-22 (ESC C 00 n).
func PageLengthInches(n int) ([]byte, error) {
	if err := errs.CheckRange("n", n, 1, 22); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x43, 0x00, byte(n)}, nil
}

// LeftMargin sets the left margin in columns (ESC l n).
func LeftMargin(columns int) ([]byte, error) {
	if err := byteRange("columns", columns); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x6C, byte(columns)}, nil
}

// RightMargin sets the right margin in columns (ESC Q n).
func RightMargin(columns int) ([]byte, error) {
	if err := byteRange("columns", columns); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x51, byte(columns)}, nil
}

// SetBottomMargin sets the bottom margin in lines (ESC N n).
func SetBottomMargin(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x4E, byte(n)}, nil
}

// sortedDedupedBytes sorts and deduplicates tab stops, validating each is a
// legal byte value.
func sortedDedupedBytes(param string, stops []int) ([]byte, error) {
	seen := make(map[int]struct{}, len(stops))
	out := make([]int, 0, len(stops))
	for _, s := range stops {
		if err := byteRange(param, s); err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)
	b := make([]byte, len(out))
	for i, v := range out {
		b[i] = byte(v)
	}
	return b, nil
}

// SetHTabs sets horizontal tab stops, sorted and deduplicated, terminated
// by a NUL byte (ESC D n1...nk 00). At most 32 stops are permitted.
func SetHTabs(stops []int) ([]byte, error) {
	if err := errs.CheckRange("tab count", len(stops), 0, 32); err != nil {
		return nil, err
	}
	sorted, err := sortedDedupedBytes("stop", stops)
	if err != nil {
		return nil, err
	}
	out := append([]byte{ESC, 0x44}, sorted...)
	return append(out, 0x00), nil
}

// SetVTabs sets vertical tab stops, sorted and deduplicated, terminated by
// a NUL byte (ESC B n1...nk 00). At most 16 stops are permitted.
func SetVTabs(stops []int) ([]byte, error) {
	if err := errs.CheckRange("tab count", len(stops), 0, 16); err != nil {
		return nil, err
	}
	sorted, err := sortedDedupedBytes("stop", stops)
	if err != nil {
		return nil, err
	}
	out := append([]byte{ESC, 0x42}, sorted...)
	return append(out, 0x00), nil
}

// Underline toggles underline mode; n must be 0 or 1 (ESC - n).
func Underline(n int) ([]byte, error) {
	if err := errs.CheckRange("n", n, 0, 1); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x2D, byte(n)}, nil
}

// DoubleWidth toggles one-line double-width mode; n must be 0 or 1 (ESC W n).
func DoubleWidth(n int) ([]byte, error) {
	if err := errs.CheckRange("n", n, 0, 1); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x57, byte(n)}, nil
}

// DoubleHeight toggles double-height mode; n must be 0 or 1 (ESC w n).
func DoubleHeight(n int) ([]byte, error) {
	if err := errs.CheckRange("n", n, 0, 1); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x77, byte(n)}, nil
}

// InterCharacterSpace sets extra intercharacter space in dots (ESC SP n).
func InterCharacterSpace(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x20, byte(n)}, nil
}

// SelectCharacterTable selects the active character table (ESC t n).
func SelectCharacterTable(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x74, byte(n)}, nil
}

// SelectInternationalCharset selects the international character set
// substitution table (ESC R n).
func SelectInternationalCharset(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x52, byte(n)}, nil
}

// Justification values accepted by the Justification command.
const (
	JustifyLeft  = 0
	JustifyCenter = 1
	JustifyRight = 2
	JustifyFull  = 3
)

// Justification selects paragraph justification (ESC a n).
func Justification(n int) ([]byte, error) {
	if err := errs.CheckRange("n", n, JustifyLeft, JustifyFull); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x61, byte(n)}, nil
}

// BitImage emits a bit-image graphics command (ESC * m nL nH <data>). m
// selects the graphics mode (0-255, validated against the mode table by
// the bitmap package before this is called); the column count is derived
// from len(data) and the bytes-per-column of mode m.
func BitImage(m int, bytesPerColumn int, data []byte) ([]byte, error) {
	if err := byteRange("m", m); err != nil {
		return nil, err
	}
	if bytesPerColumn <= 0 {
		return nil, errs.NewInternal("bytesPerColumn must be positive")
	}
	if len(data)%bytesPerColumn != 0 {
		return nil, errs.NewInternal("bit image data length is not a multiple of bytesPerColumn")
	}
	columns := len(data) / bytesPerColumn
	if err := errs.CheckRange("columns", columns, 0, 65535); err != nil {
		return nil, err
	}
	lo, hi := le16(columns)
	out := make([]byte, 0, 4+len(data))
	out = append(out, ESC, 0x2A, byte(m), lo, hi)
	return append(out, data...), nil
}

// Barcode emits the extended barcode command (ESC ( B bcL bcH <params><data>).
// bcL/bcH is the combined length of params and data, little-endian.
func Barcode(params, data []byte) ([]byte, error) {
	total := len(params) + len(data)
	if err := errs.CheckRange("barcode length", total, 0, 65535); err != nil {
		return nil, err
	}
	lo, hi := le16(total)
	out := make([]byte, 0, 5+total)
	out = append(out, ESC, 0x28, 0x42, lo, hi)
	out = append(out, params...)
	return append(out, data...), nil
}

// MasterSelectFlags names the bit positions of the master-select style
// byte (ESC ! mask), matching the real ESC/P2 hardware layout.
const (
	MasterSelectElite        = 1 << 0
	MasterSelectProportional = 1 << 1
	MasterSelectCondensed    = 1 << 2
	MasterSelectBold         = 1 << 3
	MasterSelectDoubleStrike = 1 << 4
	MasterSelectDoubleWidth  = 1 << 5
	MasterSelectItalic       = 1 << 6
	MasterSelectUnderline    = 1 << 7
)

// MasterSelect emits the master style-select command (ESC ! mask),
// toggling several style attributes at once from a bitmask built from the
// MasterSelect* constants.
func MasterSelect(mask int) ([]byte, error) {
	if err := byteRange("mask", mask); err != nil {
		return nil, err
	}
	return []byte{ESC, 0x21, byte(mask)}, nil
}
