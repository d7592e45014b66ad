package escp

import (
	"bytes"
	"testing"

	"escp2render/internal/errs"
)

func TestInitializeBeginsEveryStream(t *testing.T) {
	got := Initialize()
	want := []byte{0x1B, 0x40}
	if !bytes.Equal(got, want) {
		t.Fatalf("Initialize() = % X, want % X", got, want)
	}
}

func TestAdvanceVerticalRange(t *testing.T) {
	if _, err := AdvanceVertical(256); err == nil {
		t.Fatal("expected range error for n=256")
	} else if _, ok := asRange(err); !ok {
		t.Fatalf("expected *errs.Range, got %T: %v", err, err)
	}

	b, err := AdvanceVertical(255)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{ESC, 0x4A, 0xFF}
	if !bytes.Equal(b, want) {
		t.Fatalf("AdvanceVertical(255) = % X, want % X", b, want)
	}
}

func TestPageLengthLinesRange(t *testing.T) {
	cases := []struct {
		n     int
		valid bool
	}{{0, false}, {1, true}, {127, true}, {128, false}}
	for _, c := range cases {
		_, err := PageLengthLines(c.n)
		if c.valid && err != nil {
			t.Errorf("PageLengthLines(%d): unexpected error %v", c.n, err)
		}
		if !c.valid && err == nil {
			t.Errorf("PageLengthLines(%d): expected error", c.n)
		}
	}
}

func TestPageLengthInchesRange(t *testing.T) {
	if _, err := PageLengthInches(23); err == nil {
		t.Fatal("expected range error for 23 inches")
	}
	if _, err := PageLengthInches(0); err == nil {
		t.Fatal("expected range error for 0 inches")
	}
	b, err := PageLengthInches(11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{ESC, 0x43, 0x00, 11}
	if !bytes.Equal(b, want) {
		t.Fatalf("PageLengthInches(11) = % X, want % X", b, want)
	}
}

func TestSetHTabsSortsAndDedupes(t *testing.T) {
	b, err := SetHTabs([]int{10, 5, 10, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{ESC, 0x44, 5, 10, 20, 0x00}
	if !bytes.Equal(b, want) {
		t.Fatalf("SetHTabs = % X, want % X", b, want)
	}
}

func TestSetHTabsCountLimit(t *testing.T) {
	stops := make([]int, 33)
	for i := range stops {
		stops[i] = i
	}
	if _, err := SetHTabs(stops); err == nil {
		t.Fatal("expected error for 33 tab stops")
	}
}

func TestRelativeHorizontalTwosComplement(t *testing.T) {
	b, err := RelativeHorizontal(-1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{ESC, 0x5C, 0xFF, 0xFF}
	if !bytes.Equal(b, want) {
		t.Fatalf("RelativeHorizontal(-1) = % X, want % X", b, want)
	}
}

func TestBitImageColumnCount(t *testing.T) {
	data := make([]byte, 9) // 3 columns of 3 bytes (24-pin)
	b, err := BitImage(33, 3, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[0] != ESC || b[1] != 0x2A || b[2] != 33 {
		t.Fatalf("unexpected header: % X", b[:3])
	}
	if b[3] != 3 || b[4] != 0 {
		t.Fatalf("expected column count 3 little-endian, got %d %d", b[3], b[4])
	}
}

func TestDecodeHexOddLength(t *testing.T) {
	if _, err := DecodeHex("abc"); err == nil {
		t.Fatal("expected encoding error for odd-length hex")
	}
}

func TestMasterSelectRange(t *testing.T) {
	if _, err := MasterSelect(256); err == nil {
		t.Fatal("expected range error")
	}
	b, err := MasterSelect(MasterSelectBold | MasterSelectUnderline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{ESC, 0x21, MasterSelectBold | MasterSelectUnderline}
	if !bytes.Equal(b, want) {
		t.Fatalf("MasterSelect = % X, want % X", b, want)
	}
}

func asRange(err error) (*errs.Range, bool) {
	r, ok := err.(*errs.Range)
	return r, ok
}
