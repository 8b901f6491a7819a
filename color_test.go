package pick

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBColor(t *testing.T) {
	got := RGB{8, 16, 24}.Color()
	want := color.RGBA{R: 8, G: 16, B: 24, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestRGBGPUColor(t *testing.T) {
	got := RGB{255, 0, 51}.GPUColor()
	if got.R != 1 || got.G != 0 || got.B != 0.2 || got.A != 1 {
		t.Errorf("GPUColor() = %+v, want {1 0 0.2 1}", got)
	}
	if bg := Background.GPUColor(); bg.R != 0 || bg.G != 0 || bg.B != 0 || bg.A != 1 {
		t.Errorf("Background.GPUColor() = %+v, want opaque black", bg)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"rgba", color.RGBA{R: 8, G: 16, B: 24, A: 255}, RGB{8, 16, 24}},
		{"nrgba", color.NRGBA{R: 248, G: 0, B: 8, A: 255}, RGB{248, 0, 8}},
		{"rgba64", color.RGBA64{R: 0x10ff, G: 0x2000, B: 0, A: 0xffff}, RGB{0x10, 0x20, 0}},
		{"black", color.Black, Background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{"exact", 8, 16, 24, RGB{8, 16, 24}},
		{"truncates", 15.99, 8.5, 0.9, RGB{15, 8, 0}},
		{"clamps", -3, 300, 255, RGB{0, 255, 255}},
		{"nan", math.NaN(), 8, 8, RGB{0, 8, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFloat(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("FromFloat(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestFromUnorm(t *testing.T) {
	for c := Code(1); c <= MaxCode; c += 97 {
		rgb := c.RGB()
		gc := rgb.GPUColor()
		if got := FromUnorm(gc.R, gc.G, gc.B); got != rgb {
			t.Fatalf("FromUnorm(GPUColor(%v)) = %v", rgb, got)
		}
	}
	if got := FromUnorm(-1, 2, 0.5); got != (RGB{0, 255, 128}) {
		t.Errorf("FromUnorm(-1, 2, 0.5) = %v, want (0,255,128)", got)
	}
}

func TestRGBString(t *testing.T) {
	if got := (RGB{8, 0, 255}).String(); got != "(8,0,255)" {
		t.Errorf("String() = %q", got)
	}
}
