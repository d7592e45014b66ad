package escp

import "escp2render/internal/errs"

// extended builds an ESC ( c pL pH <params> command, the shape shared by
// every "extended" ESC/P2 command spec.md §4.1 groups together (set-unit,
// set-page-length-unit, set-page-format, absolute/relative vertical unit
// position, assign-char-table, select-line-score).
func extended(c byte, params []byte) ([]byte, error) {
	if err := errs.CheckRange("param length", len(params), 0, 65535); err != nil {
		return nil, err
	}
	lo, hi := le16(len(params))
	out := make([]byte, 0, 3+len(params))
	out = append(out, ESC, 0x28, c, lo, hi)
	return append(out, params...), nil
}

// le32 splits a non-negative value into four little-endian bytes.
func le32(value int) []byte {
	return []byte{
		byte(value & 0xFF),
		byte((value >> 8) & 0xFF),
		byte((value >> 16) & 0xFF),
		byte((value >> 24) & 0xFF),
	}
}

// SetUnit sets the defined unit used by later extended positioning
// commands, in 1/3600-inch increments (ESC ( U 01 00 n).
func SetUnit(n int) ([]byte, error) {
	if err := byteRange("n", n); err != nil {
		return nil, err
	}
	return extended(0x55, []byte{byte(n)})
}

// SetPageLengthUnit sets the page length in the currently defined unit
// (ESC ( C 02 00 nL nH).
func SetPageLengthUnit(units int) ([]byte, error) {
	if err := errs.CheckRange("units", units, 0, 65535); err != nil {
		return nil, err
	}
	lo, hi := le16(units)
	return extended(0x43, []byte{lo, hi})
}

// SetPageFormat sets the top and bottom margins in the currently defined
// unit (ESC ( c 08 00 t0..t3 b0..b3).
func SetPageFormat(topUnits, bottomUnits int) ([]byte, error) {
	if err := errs.CheckRange("topUnits", topUnits, 0, 0x7FFFFFFF); err != nil {
		return nil, err
	}
	if err := errs.CheckRange("bottomUnits", bottomUnits, 0, 0x7FFFFFFF); err != nil {
		return nil, err
	}
	params := append(le32(topUnits), le32(bottomUnits)...)
	return extended(0x63, params)
}

// SetAbsoluteVerticalUnitPosition positions the print head at an absolute
// vertical offset in the currently defined unit (ESC ( V 04 00 m0..m3).
func SetAbsoluteVerticalUnitPosition(units int) ([]byte, error) {
	if err := errs.CheckRange("units", units, 0, 0x7FFFFFFF); err != nil {
		return nil, err
	}
	return extended(0x56, le32(units))
}

// SetRelativeVerticalUnitPosition moves the print head by a relative
// vertical offset in the currently defined unit (ESC ( v 04 00 m0..m3).
// offset is signed; it is encoded as a 32-bit two's-complement value.
func SetRelativeVerticalUnitPosition(offset int) ([]byte, error) {
	if err := errs.CheckRange("offset", offset, -(1 << 31), (1<<31)-1); err != nil {
		return nil, err
	}
	return extended(0x76, le32(int(uint32(int32(offset)))))
}

// AssignCharacterTable assigns one of the four internal character-table
// slots to a specific table id (ESC ( t 03 00 d1 d2 d3).
func AssignCharacterTable(slot, table, reserved int) ([]byte, error) {
	if err := byteRange("slot", slot); err != nil {
		return nil, err
	}
	if err := byteRange("table", table); err != nil {
		return nil, err
	}
	if err := byteRange("reserved", reserved); err != nil {
		return nil, err
	}
	return extended(0x74, []byte{byte(slot), byte(table), byte(reserved)})
}

// SelectLineScore selects the style of an underline/strikethrough line
// score across five parameter bytes (ESC ( - 05 00 d1..d5).
func SelectLineScore(params [5]int) ([]byte, error) {
	b := make([]byte, 5)
	for i, p := range params {
		if err := byteRange("params", p); err != nil {
			return nil, err
		}
		b[i] = byte(p)
	}
	return extended(0x2D, b)
}
