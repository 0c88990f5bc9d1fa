package gouache

import "testing"

func TestMat4_Identity(t *testing.T) {
	p := V2(3, -7)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
	m := Translate(1, 2, 0)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestMat4_Compose(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec2
		want Vec2
	}{
		{"scale", Scale(2), V2(1, 3), V2(2, 6)},
		{"translate", Translate(10, -5, 0), V2(1, 1), V2(11, -4)},
		// Scale applied first, then translate.
		{"translate*scale", Translate(10, 0, 0).Mul(Scale(2)), V2(1, 1), V2(12, 2)},
		{"scale*translate", Scale(2).Mul(Translate(10, 0, 0)), V2(1, 1), V2(22, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !got.Approx(tt.want, 1e-6) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(800, 600)
	tests := []struct {
		in, want Vec2
	}{
		{V2(0, 0), V2(-1, -1)},
		{V2(800, 600), V2(1, 1)},
		{V2(400, 300), V2(0, 0)},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !got.Approx(tt.want, 1e-6) {
			t.Errorf("Ortho.TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
