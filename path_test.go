package gouache

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name   string
		v      float32
		lo, hi float32
		want   uint16
	}{
		{"min", 0, 0, 100, 0},
		{"max", 100, 0, 100, UnormMax},
		{"mid", 50, 0, 100, 32768},
		{"negative range", -25, -50, 0, 32768},
		{"below", -1, 0, 100, 0},
		{"above", 101, 0, 100, UnormMax},
		{"zero extent", 5, 5, 5, 0},
		{"inverted", 5, 10, 0, 0},
		{"nan", float32(math.NaN()), 0, 1, 0},
		{"infinite extent", 0, float32(math.Inf(-1)), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Quantize(%v, %v, %v) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestQuantize_RoundTrip(t *testing.T) {
	ranges := [][2]float32{
		{0, 1},
		{-120, 740},
		{0, 2048},
		{-3.5, -1.25},
	}

	for _, r := range ranges {
		lo, hi := r[0], r[1]
		halfStep := float64(hi-lo) / UnormMax / 2
		for i := 0; i <= 1000; i++ {
			v := lo + (hi-lo)*float32(i)/1000
			back := Dequantize(Quantize(v, lo, hi), lo, hi)
			// Half a step plus float32 rounding of the result.
			slack := halfStep + 2e-7*math.Max(1, math.Max(math.Abs(float64(lo)), math.Abs(float64(hi))))
			if diff := math.Abs(float64(back - v)); diff > slack {
				t.Fatalf("range %v: %v -> %v, diff %g > %g", r, v, back, diff, slack)
			}
		}
	}
}

func TestDequantize_Degenerate(t *testing.T) {
	if got := Dequantize(1234, 3, 3); got != 3 {
		t.Errorf("Dequantize on zero extent = %v, want 3", got)
	}
}

func TestPath_Accessors(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(V2(0, 0)).QuadTo(V2(50, 100), V2(100, 0)).Close()
	p := b.Build()

	if p.Empty() {
		t.Fatal("path should not be empty")
	}
	if got := p.Size(); got != V2(100, 100) {
		t.Errorf("Size = %v, want (100, 100)", got)
	}
	if got := p.Point(1); !got.Approx(V2(50, 100), 100.0/UnormMax) {
		t.Errorf("Point(1) = %v, want (50, 100)", got)
	}
}
