package charset

import "testing"

func TestBaseCharWidths(t *testing.T) {
	cases := map[int]int{10: 36, 12: 30, 15: 24}
	for cpi, want := range cases {
		if got := Width("A", WidthOptions{CPI: cpi}); got != want {
			t.Errorf("Width single char at %d CPI = %d, want %d", cpi, got, want)
		}
	}
}

func TestDoubleWidthDoubles(t *testing.T) {
	base := Width("AB", WidthOptions{CPI: 10})
	doubled := Width("AB", WidthOptions{CPI: 10, DoubleWidth: true})
	if doubled != base*2 {
		t.Fatalf("double-width width = %d, want %d", doubled, base*2)
	}
}

func TestInterCharSpaceAddsPerCharacter(t *testing.T) {
	plain := Width("AB", WidthOptions{CPI: 10})
	spaced := Width("AB", WidthOptions{CPI: 10, InterCharSpace: 2})
	if spaced != plain+4 {
		t.Fatalf("spaced width = %d, want %d", spaced, plain+4)
	}
}

func TestEncodeUKSubstitutesHash(t *testing.T) {
	b := Encode("#1", UK, PC437)
	if string(b[0]) == "#" {
		t.Fatalf("expected '#' to be substituted under UK charset, got %q", b)
	}
}

func TestEncodeBoxDrawing(t *testing.T) {
	b := Encode("─", USA, PC437)
	if len(b) != 1 || b[0] != 0xC4 {
		t.Fatalf("Encode horizontal box line = % X, want [C4]", b)
	}
}

func TestEncodeBoxDrawingPassthroughWithoutBoxTable(t *testing.T) {
	b := Encode("─", USA, Katakana)
	if len(b) != 1 || b[0] == 0xC4 {
		t.Fatalf("expected non-box-glyph table to not translate, got % X", b)
	}
}

func TestWrapBreaksOnWhitespace(t *testing.T) {
	lines := Wrap("the quick brown fox", Width("the quick", WidthOptions{CPI: 10}), WidthOptions{CPI: 10})
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %v", lines)
	}
}

func TestWrapBreaksOverlongWord(t *testing.T) {
	maxDots := Width("abcde", WidthOptions{CPI: 10})
	lines := Wrap("abcdefghijklmno", maxDots, WidthOptions{CPI: 10})
	if len(lines) < 2 {
		t.Fatalf("expected an overlong word to be broken into multiple lines, got %v", lines)
	}
	for _, l := range lines {
		if w := Width(l, WidthOptions{CPI: 10}); w > maxDots {
			t.Errorf("line %q width %d exceeds maxDots %d", l, w, maxDots)
		}
	}
}
