package pick

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
)

// RGB is an opaque 8-bit color as drawn into, or sampled from, a pick buffer.
type RGB struct {
	R, G, B uint8
}

// Background is the color of pixels that belong to no component.
var Background = RGB{}

// Color converts c to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// GPUColor converts c to a normalized gputypes.Color with alpha 1.
// It is suitable as a render pass clear value or a flat shader color.
func (c RGB) GPUColor() gputypes.Color {
	return gputypes.NewColorRGB(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
	)
}

// String returns c as "(r,g,b)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color to RGB.
// The high byte of each 16-bit channel is kept; alpha is ignored because
// pick buffers are drawn opaque.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// FromFloat converts channel values in [0, 255] that arrive as floating
// point numbers. Values are truncated toward zero, then clamped.
func FromFloat(r, g, b float64) RGB {
	return RGB{R: truncate255(r), G: truncate255(g), B: truncate255(b)}
}

// FromUnorm converts normalized channel values in [0, 1], as read back from
// float or UNORM render targets. Values are rounded to the nearest 8-bit
// level, which is the exact inverse of UNORM encoding, then clamped.
func FromUnorm(r, g, b float64) RGB {
	return RGB{
		R: truncate255(math.Round(r * 255)),
		G: truncate255(math.Round(g * 255)),
		B: truncate255(math.Round(b * 255)),
	}
}

func truncate255(x float64) uint8 {
	switch {
	case math.IsNaN(x), x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}
