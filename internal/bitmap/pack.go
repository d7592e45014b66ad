package bitmap

// NumStripes returns how many horizontal stripes of mode.Pins rows img
// divides into (the last stripe may be partial; missing rows read as 0).
func NumStripes(img *Binary, mode Mode) int {
	return (img.Height + mode.Pins - 1) / mode.Pins
}

// PackStripe packs one horizontal stripe of mode.Pins rows, starting at
// stripeTop, into the column-major byte layout the ESC * command expects:
// for each column x, mode.BytesPerColumn bytes, with bit 7 (MSB) of the
// first byte being pin 0 and proceeding down to pin mode.Pins-1 in the
// last byte's LSB.
func PackStripe(img *Binary, mode Mode, stripeTop int) []byte {
	out := make([]byte, img.Width*mode.BytesPerColumn)
	for x := 0; x < img.Width; x++ {
		base := x * mode.BytesPerColumn
		for p := 0; p < mode.Pins; p++ {
			if !img.at(x, stripeTop+p) {
				continue
			}
			byteIdx := base + p/8
			bitIdx := 7 - (p % 8)
			out[byteIdx] |= 1 << uint(bitIdx)
		}
	}
	return out
}

// PackAll packs every stripe of img under mode, in top-to-bottom order.
func PackAll(img *Binary, mode Mode) [][]byte {
	n := NumStripes(img, mode)
	stripes := make([][]byte, n)
	for i := 0; i < n; i++ {
		stripes[i] = PackStripe(img, mode, i*mode.Pins)
	}
	return stripes
}
