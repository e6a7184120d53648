package fonts

import "testing"

func TestMonoParsesOnce(t *testing.T) {
	a, err := Mono()
	if err != nil {
		t.Fatalf("Mono() error: %v", err)
	}
	b, _ := Mono()
	if a != b {
		t.Error("Mono() should return the same parsed font")
	}
}

func TestFaceSize(t *testing.T) {
	tests := []struct {
		name string
		size float64
	}{
		{"regular", 15},
		{"tiny raised to minimum", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := Face(tt.size)
			if err != nil {
				t.Fatalf("Face(%v) error: %v", tt.size, err)
			}
			defer face.Close()
			if h := face.Metrics().Height.Ceil(); h <= 0 {
				t.Errorf("face height = %d, want > 0", h)
			}
			if _, ok := face.GlyphAdvance('7'); !ok {
				t.Error("face has no glyph for digits")
			}
		})
	}
}
