package text

import (
	"reflect"
	"testing"

	"github.com/gogpu/gouache"
)

const layoutEps = 1e-4

func approx(a, b float32) bool {
	d := a - b
	return d < layoutEps && d > -layoutEps
}

// TestLayout_EndToEnd tests exact pen positions against the fake font metrics.
func TestLayout_EndToEnd(t *testing.T) {
	l := Layout(newFakeFont(), 100, "AB", DefaultLayoutOptions())

	if len(l.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(l.Placements))
	}
	if !approx(l.Scale, 0.1) {
		t.Errorf("Scale = %v, want 0.1", l.Scale)
	}

	want := []Placement{
		{GID: 1, Rune: 'A', Pos: gouache.V2(0, 80)},
		{GID: 2, Rune: 'B', Pos: gouache.V2(60, 80)},
	}
	for i, p := range l.Placements {
		if p.GID != want[i].GID || p.Rune != want[i].Rune {
			t.Errorf("placement %d = %+v, want %+v", i, p, want[i])
		}
		if !p.Pos.Approx(want[i].Pos, layoutEps) {
			t.Errorf("placement %d pos = %v, want %v", i, p.Pos, want[i].Pos)
		}
	}

	if !approx(l.Width, 115) {
		t.Errorf("Width = %v, want 115", l.Width)
	}
	if !approx(l.LineHeight, 120) {
		t.Errorf("LineHeight = %v, want 120", l.LineHeight)
	}
	if !approx(l.Height, 120) {
		t.Errorf("Height = %v, want 120", l.Height)
	}
	if l.Lines != 1 {
		t.Errorf("Lines = %d, want 1", l.Lines)
	}
}

// TestLayout_Newline tests pen reset and height growth on '\n'.
func TestLayout_Newline(t *testing.T) {
	l := Layout(newFakeFont(), 100, "A\nB", DefaultLayoutOptions())

	if len(l.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(l.Placements))
	}
	if !l.Placements[1].Pos.Approx(gouache.V2(0, -40), layoutEps) {
		t.Errorf("second line pos = %v, want (0, -40)", l.Placements[1].Pos)
	}
	if !approx(l.Height, 240) {
		t.Errorf("Height = %v, want 240", l.Height)
	}
	if !approx(l.Width, 60) {
		t.Errorf("Width = %v, want 60", l.Width)
	}
	if l.Lines != 2 {
		t.Errorf("Lines = %d, want 2", l.Lines)
	}
}

// TestLayout_Empty tests layout of empty string.
func TestLayout_Empty(t *testing.T) {
	l := Layout(newFakeFont(), 100, "", DefaultLayoutOptions())

	if len(l.Placements) != 0 {
		t.Errorf("expected 0 placements, got %d", len(l.Placements))
	}
	if l.Width != 0 {
		t.Errorf("Width = %v, want 0", l.Width)
	}
	if !approx(l.Height, l.LineHeight) {
		t.Errorf("Height = %v, want one line (%v)", l.Height, l.LineHeight)
	}
}

// TestLayout_SkipsUnmapped tests that runes without glyphs take no space.
func TestLayout_SkipsUnmapped(t *testing.T) {
	l := Layout(newFakeFont(), 100, "A☃B", DefaultLayoutOptions())

	if len(l.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(l.Placements))
	}
	if !approx(l.Placements[1].Pos.X, 60) {
		t.Errorf("B x = %v, want 60", l.Placements[1].Pos.X)
	}
}

// TestLayout_Deterministic tests that equal inputs give equal layouts.
func TestLayout_Deterministic(t *testing.T) {
	f := newFakeFont()
	for _, s := range []string{"", "A", "A\nB", "AB BA\n\nA"} {
		a := Layout(f, 37, s, DefaultLayoutOptions())
		b := Layout(f, 37, s, DefaultLayoutOptions())
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Layout(%q) not deterministic:\n%+v\n%+v", s, a, b)
		}
	}
}

func TestLayout_NormalizeNewlines(t *testing.T) {
	tests := []struct {
		name      string
		normalize bool
		wantLines int
		wantRunes int
	}{
		{"normalized", true, 3, 3},
		// Without folding, '\r' is an unmapped rune and only "\n" breaks.
		{"raw", false, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultLayoutOptions()
			opts.NormalizeNewlines = tt.normalize
			l := Layout(newFakeFont(), 100, "A\r\nB\rA", opts)
			if l.Lines != tt.wantLines {
				t.Errorf("Lines = %d, want %d", l.Lines, tt.wantLines)
			}
			if len(l.Placements) != tt.wantRunes {
				t.Errorf("placements = %d, want %d", len(l.Placements), tt.wantRunes)
			}
		})
	}
}

func TestLayout_NFC(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT composes to U+00E9.
	const decomposed = "e\u0301"

	opts := DefaultLayoutOptions()
	l := Layout(newFakeFont(), 100, decomposed, opts)
	if len(l.Placements) != 1 || l.Placements[0].Rune != '\u00e9' {
		t.Errorf("NFC layout = %+v, want one U+00E9 placement", l.Placements)
	}

	opts.Normalize = false
	l = Layout(newFakeFont(), 100, decomposed, opts)
	if len(l.Placements) != 0 {
		t.Errorf("raw layout = %+v, want no placements", l.Placements)
	}
}

func TestLayout_ZeroUnitsPerEm(t *testing.T) {
	f := newFakeFont()
	f.metrics.UnitsPerEm = 0

	l := Layout(f, 100, "AB", DefaultLayoutOptions())
	if l.Scale != 0 || l.Width != 0 {
		t.Errorf("Scale = %v, Width = %v, want 0, 0", l.Scale, l.Width)
	}
}
