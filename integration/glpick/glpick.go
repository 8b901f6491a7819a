// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glpick reads pick colors back from an OpenGL framebuffer.
//
// The pick pass must be drawn into a framebuffer with a linear RGBA8 color
// attachment, with blending, dithering, multisampling and
// GL_FRAMEBUFFER_SRGB disabled. Every function in this package must be
// called on the thread that owns the current GL context.
//
// OpenGL puts the origin at the bottom-left. Both Sampler and ReadBuffer
// return data with a top-left origin, matching pick.Buffer.
package glpick

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/pick"
)

// Sampler reads single pixels from a framebuffer on demand.
// The zero value reads from the default framebuffer.
type Sampler struct {
	// Framebuffer is the framebuffer object holding the pick pass.
	Framebuffer uint32

	// Width and Height are the framebuffer size in pixels.
	Width, Height int
}

var _ pick.Sampler = (*Sampler)(nil)

// SamplePixel reads the color at (x, y), top-left origin.
// Coordinates outside the framebuffer sample the background.
func (s *Sampler) SamplePixel(x, y int) (pick.RGB, error) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return pick.Background, nil
	}
	var px [4]uint8
	err := withReadFramebuffer(s.Framebuffer, func() {
		gl.ReadPixels(int32(x), int32(s.Height-1-y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	})
	if err != nil {
		return pick.Background, fmt.Errorf("glpick: read pixel (%d,%d): %w", x, y, err)
	}
	return pick.RGB{R: px[0], G: px[1], B: px[2]}, nil
}

// ReadBuffer reads the whole framebuffer into a new pick.Buffer.
func ReadBuffer(framebuffer uint32, width, height int) (*pick.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("glpick: %w: %dx%d", pick.ErrInvalidSize, width, height)
	}
	buf := pick.NewBuffer(width, height)
	pix := buf.Pixels()
	err := withReadFramebuffer(framebuffer, func() {
		gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pix[0]))
	})
	if err != nil {
		return nil, fmt.Errorf("glpick: read %dx%d: %w", width, height, err)
	}
	buf.FlipVertical()
	return buf, nil
}

// withReadFramebuffer binds fb for reading with tight packing, runs fn and
// restores the previous state.
func withReadFramebuffer(fb uint32, fn func()) error {
	var prevFB, prevAlign int32
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &prevFB)
	gl.GetIntegerv(gl.PACK_ALIGNMENT, &prevAlign)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)

	fn()
	code := gl.GetError()

	gl.PixelStorei(gl.PACK_ALIGNMENT, prevAlign)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(prevFB))

	if code != gl.NO_ERROR {
		return glError(code)
	}
	return nil
}

// glError is an OpenGL error code.
type glError uint32

func (e glError) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04x", uint32(e))
	}
}
