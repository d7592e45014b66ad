package bitmap

// Mode describes one of the fixed ESC * graphics-mode descriptors. The
// converter never chooses a mode itself — the caller selects one and the
// converter packs columns accordingly.
type Mode struct {
	ID                 int
	Pins               int // 8 or 24
	HorizontalDPI      int
	BytesPerColumn     int
	AdjacentDotsAllowed bool
}

// Modes enumerates the 13 ESC/P2 bit-image modes spec.md §4.3 references:
// the legacy 8-pin modes (0-7) and the 24-pin modes (32, 33, 38, 39, 40).
var Modes = map[int]Mode{
	0: {ID: 0, Pins: 8, HorizontalDPI: 60, BytesPerColumn: 1, AdjacentDotsAllowed: true},
	1: {ID: 1, Pins: 8, HorizontalDPI: 120, BytesPerColumn: 1, AdjacentDotsAllowed: true},
	2: {ID: 2, Pins: 8, HorizontalDPI: 120, BytesPerColumn: 1, AdjacentDotsAllowed: false},
	3: {ID: 3, Pins: 8, HorizontalDPI: 240, BytesPerColumn: 1, AdjacentDotsAllowed: false},
	4: {ID: 4, Pins: 8, HorizontalDPI: 80, BytesPerColumn: 1, AdjacentDotsAllowed: true},
	5: {ID: 5, Pins: 8, HorizontalDPI: 72, BytesPerColumn: 1, AdjacentDotsAllowed: true},
	6: {ID: 6, Pins: 8, HorizontalDPI: 90, BytesPerColumn: 1, AdjacentDotsAllowed: true},
	7: {ID: 7, Pins: 8, HorizontalDPI: 144, BytesPerColumn: 1, AdjacentDotsAllowed: false},

	32: {ID: 32, Pins: 24, HorizontalDPI: 60, BytesPerColumn: 3, AdjacentDotsAllowed: true},
	33: {ID: 33, Pins: 24, HorizontalDPI: 120, BytesPerColumn: 3, AdjacentDotsAllowed: true},
	38: {ID: 38, Pins: 24, HorizontalDPI: 90, BytesPerColumn: 3, AdjacentDotsAllowed: true},
	39: {ID: 39, Pins: 24, HorizontalDPI: 120, BytesPerColumn: 3, AdjacentDotsAllowed: false},
	40: {ID: 40, Pins: 24, HorizontalDPI: 240, BytesPerColumn: 3, AdjacentDotsAllowed: false},
}

// LookupMode returns the Mode descriptor for id, or false if id does not
// name one of the 13 fixed modes.
func LookupMode(id int) (Mode, bool) {
	m, ok := Modes[id]
	return m, ok
}
