package pick

import "fmt"

// Code identifies one registered component.
// Valid codes are in [1, MaxCode]; NoCode marks the background.
type Code uint16

const (
	// NoCode is the code of the background and of unselectable pixels.
	NoCode Code = 0

	// MaxCode is the largest code that fits in the 5-5-5 color encoding.
	MaxCode Code = 1<<(3*channelBits) - 1
)

const (
	channelBits  = 5
	channelMask  = 1<<channelBits - 1
	channelShift = 8 - channelBits
)

// Valid reports whether c can be assigned to a component.
func (c Code) Valid() bool {
	return c != NoCode && c <= MaxCode
}

// RGB returns the pick color for c.
// Bits above MaxCode are ignored.
func (c Code) RGB() RGB {
	return RGB{
		R: uint8(c&channelMask) << channelShift,
		G: uint8(c>>channelBits&channelMask) << channelShift,
		B: uint8(c>>(2*channelBits)&channelMask) << channelShift,
	}
}

// String returns the code in decimal form.
func (c Code) String() string {
	return fmt.Sprintf("#%d", uint16(c))
}

// Decode reconstructs the code drawn at a sampled color.
// Each channel is quantized by integer division by 8; the low three bits
// are discarded, never rounded.
func Decode(c RGB) Code {
	return Code(c.R>>channelShift) |
		Code(c.G>>channelShift)<<channelBits |
		Code(c.B>>channelShift)<<(2*channelBits)
}
