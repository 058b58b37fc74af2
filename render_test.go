package bounce

import "testing"

// --- toRGBA ---

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want colorRGBA
	}{
		{"white", Color{1, 1, 1, 1}, colorRGBA{255, 255, 255, 255}},
		{"black", Color{0, 0, 0, 1}, colorRGBA{0, 0, 0, 255}},
		{"transparent", Color{1, 1, 1, 0}, colorRGBA{0, 0, 0, 0}},
		{"half alpha premultiplies", Color{1, 0, 0, 0.5}, colorRGBA{127, 0, 0, 127}},
		{"overbright clamped", Color{2, 2, 2, 1}, colorRGBA{255, 255, 255, 255}},
		{"negative clamped", Color{-1, 0.5, 0, 1}, colorRGBA{0, 127, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.toRGBA(); got != tt.want {
				t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRGBAInterface(t *testing.T) {
	r, g, b, a := colorRGBA{255, 128, 0, 255}.RGBA()
	if r != 0xffff || g != 128*0x101 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}
