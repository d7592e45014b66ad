package bitmap

import "testing"

func TestFloydSteinbergGradient(t *testing.T) {
	img := &Gray{Width: 4, Height: 1, Pix: []byte{0, 85, 170, 255}}
	out := Dither(img, FloydSteinberg, 0)
	want := []byte{255, 255, 0, 0}
	for i := range want {
		if out.Pix[i] != want[i] {
			t.Fatalf("FloydSteinberg = %v, want %v", out.Pix, want)
		}
	}
}

func TestBayerTilesFourByFour(t *testing.T) {
	img := NewGray(8, 8)
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	out := Dither(img, Bayer, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := out.Pix[y*8+x]
			b := out.Pix[y*8+(x+4)]
			c := out.Pix[(y+4)*8+x]
			if a != b || a != c {
				t.Fatalf("Bayer pattern not tiled at (%d,%d): %d %d %d", x, y, a, b, c)
			}
		}
	}
}

func TestThresholdBasic(t *testing.T) {
	img := &Gray{Width: 2, Height: 1, Pix: []byte{0, 255}}
	out := Dither(img, Threshold, 128)
	if out.Pix[0] != 255 || out.Pix[1] != 0 {
		t.Fatalf("Threshold = %v, want [255 0]", out.Pix)
	}
}

func TestScaleRejectsNonPositiveDimensions(t *testing.T) {
	img := NewGray(4, 4)
	if _, err := Scale(img, 0, 4, Nearest); err == nil {
		t.Fatal("expected Graphics error for width=0")
	}
	if _, err := Scale(img, 4, -1, Bilinear); err == nil {
		t.Fatal("expected Graphics error for height=-1")
	}
}

func TestScaleNearestDownsamples(t *testing.T) {
	img := NewGray(4, 4)
	img.Pix[0] = 255
	out, err := Scale(img, 2, 2, Nearest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("unexpected output size %dx%d", out.Width, out.Height)
	}
}

func TestPackStripe24PinBitOrder(t *testing.T) {
	img := &Binary{Width: 1, Height: 24, Pix: make([]byte, 24)}
	img.Pix[0] = 255 // pin 0 set
	img.Pix[23] = 255 // pin 23 set
	mode := Modes[33]
	packed := PackStripe(img, mode, 0)
	if len(packed) != 3 {
		t.Fatalf("expected 3 bytes for one column at 24 pins, got %d", len(packed))
	}
	if packed[0] != 0x80 {
		t.Fatalf("pin 0 should set MSB of byte 0, got %08b", packed[0])
	}
	if packed[2] != 0x01 {
		t.Fatalf("pin 23 should set LSB of byte 2, got %08b", packed[2])
	}
}

func TestNumStripesRoundsUp(t *testing.T) {
	img := &Binary{Width: 1, Height: 25, Pix: make([]byte, 25)}
	if n := NumStripes(img, Modes[33]); n != 2 {
		t.Fatalf("NumStripes(25 rows, 24-pin) = %d, want 2", n)
	}
}
