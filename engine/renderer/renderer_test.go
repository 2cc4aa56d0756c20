package renderer

import "testing"

func TestParsePresentMode(t *testing.T) {
	tests := []struct {
		in   string
		want PresentMode
	}{
		{"vsync", PresentModeVSync},
		{"uncapped", PresentModeUncapped},
		{"", PresentModeVSync},
		{"fast", PresentModeVSync},
	}
	for _, tt := range tests {
		if got := ParsePresentMode(tt.in); got != tt.want {
			t.Errorf("ParsePresentMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPresentModeRoundTrip(t *testing.T) {
	for _, m := range []PresentMode{PresentModeVSync, PresentModeUncapped} {
		if got := ParsePresentMode(m.String()); got != m {
			t.Errorf("ParsePresentMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestColorConversion(t *testing.T) {
	c := Color{R: 0.25, G: 0.5, B: 0.75, A: 1}.wgpu()
	if c.R != 0.25 || c.G != 0.5 || c.B != 0.75 || c.A != 1 {
		t.Errorf("wgpu color = %+v", c)
	}
}
