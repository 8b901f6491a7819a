package pick

// Sampler reads single pixels from a rendered pick buffer.
//
// Implementations exist for CPU buffers ([Buffer]), OpenGL framebuffers
// (integration/glpick) and ebiten images (integration/ebitenpick).
// Coordinates are pick buffer pixels with the origin at the top-left.
type Sampler interface {
	SamplePixel(x, y int) (RGB, error)
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func(x, y int) (RGB, error)

// SamplePixel calls f(x, y).
func (f SamplerFunc) SamplePixel(x, y int) (RGB, error) {
	return f(x, y)
}

var _ Sampler = (*Buffer)(nil)
