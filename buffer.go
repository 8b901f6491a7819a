package pick

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// Buffer is a CPU-backed pick buffer.
//
// Pixels are stored 4 bytes each in the order given by Format; alpha is
// carried but never interpreted. Buffer implements Sampler.
//
// Example:
//
//	buf := pick.NewBuffer(800, 600)
//	buf.FillRect(image.Rect(10, 10, 50, 50), rgb)
//	sample, _ := buf.SamplePixel(20, 20)
type Buffer struct {
	img    *image.RGBA
	format gputypes.TextureFormat
}

// NewBuffer creates a w×h RGBA8 buffer cleared to the background.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{
		img:    image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		format: gputypes.TextureFormatRGBA8Unorm,
	}
	b.Clear()
	return b
}

// NewBufferFromImage wraps img as an RGBA8 buffer without copying.
func NewBufferFromImage(img *image.RGBA) *Buffer {
	return &Buffer{img: img, format: gputypes.TextureFormatRGBA8Unorm}
}

// NewBufferFromPixels wraps pixel data read back from a render target.
// The data is used directly without copying. Only RGBA8Unorm and
// BGRA8Unorm are accepted: sRGB formats re-encode channel values and
// would break codes.
func NewBufferFromPixels(pix []byte, w, h, stride int, format gputypes.TextureFormat) (*Buffer, error) {
	if !supportedFormat(format) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if w <= 0 || h <= 0 || stride < w*4 || len(pix) < (h-1)*stride+w*4 {
		return nil, fmt.Errorf("%w: %dx%d stride %d with %d bytes", ErrInvalidSize, w, h, stride, len(pix))
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}
	return &Buffer{img: img, format: format}, nil
}

func supportedFormat(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatRGBA8Unorm || f == gputypes.TextureFormatBGRA8Unorm
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.img.Rect.Dy()
}

// Format returns the pixel format.
func (b *Buffer) Format() gputypes.TextureFormat {
	return b.format
}

// Pixels returns direct access to the pixel data.
func (b *Buffer) Pixels() []byte {
	return b.img.Pix
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.img.Stride
}

// Image returns the buffer as an *image.RGBA sharing its memory.
// For BGRA buffers the red and blue channels appear swapped.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Clear fills the buffer with the background color.
func (b *Buffer) Clear() {
	b.FillRect(b.img.Rect, Background)
}

// SetPixel stores c at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetPixel(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return
	}
	b.put(b.img.PixOffset(x, y), c)
}

// FillRect fills r, clipped to the buffer, with c.
func (b *Buffer) FillRect(r image.Rectangle, c RGB) {
	r = r.Intersect(b.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := b.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			b.put(i, c)
			i += 4
		}
	}
}

func (b *Buffer) put(i int, c RGB) {
	p := b.img.Pix[i : i+4 : i+4]
	if b.format == gputypes.TextureFormatBGRA8Unorm {
		p[0], p[1], p[2], p[3] = c.B, c.G, c.R, 0xff
		return
	}
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
}

// SamplePixel returns the color at (x, y).
// Coordinates outside the buffer sample the background.
func (b *Buffer) SamplePixel(x, y int) (RGB, error) {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return Background, nil
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	if b.format == gputypes.TextureFormatBGRA8Unorm {
		return RGB{R: p[2], G: p[1], B: p[0]}, nil
	}
	return RGB{R: p[0], G: p[1], B: p[2]}, nil
}

// Resize returns a w×h copy of the buffer scaled with nearest-neighbour
// sampling, so every pixel of the result is an exact pick color of the
// source. It is meant for keeping a stale pick buffer usable after a
// window resize until the next pick pass.
func (b *Buffer) Resize(w, h int) *Buffer {
	dst := &Buffer{
		img:    image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		format: b.format,
	}
	draw.NearestNeighbor.Scale(dst.img, dst.img.Rect, b.img, b.img.Rect, draw.Src, nil)
	return dst
}

// FlipVertical reverses the row order in place. Read-backs from APIs with
// a bottom-left origin, such as OpenGL, need it before sampling.
func (b *Buffer) FlipVertical() {
	r := b.img.Rect
	n := r.Dx() * 4
	tmp := make([]byte, n)
	for top, bot := r.Min.Y, r.Max.Y-1; top < bot; top, bot = top+1, bot-1 {
		i, j := b.img.PixOffset(r.Min.X, top), b.img.PixOffset(r.Min.X, bot)
		copy(tmp, b.img.Pix[i:i+n])
		copy(b.img.Pix[i:i+n], b.img.Pix[j:j+n])
		copy(b.img.Pix[j:j+n], tmp)
	}
}

// At implements the image.Image interface, returning opaque pick colors.
func (b *Buffer) At(x, y int) color.Color {
	c, _ := b.SamplePixel(x, y)
	return c.Color()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return b.img.Rect
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}
