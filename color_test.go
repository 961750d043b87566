package figure

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
		ok   bool
	}{
		{Red, color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, true},
		{Green, color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}, true},
		{Blue, color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, true},
		{"  CornflowerBlue ", color.RGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}, true},
		{"burnt sienna", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, ok := tt.c.RGBA()
		if ok != tt.ok || got != tt.want {
			t.Errorf("Color(%q).RGBA() = %v, %v, want %v, %v", tt.c, got, ok, tt.want, tt.ok)
		}
	}
}
