// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggpick

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/pick"
	"github.com/gogpu/pick/mesh"
)

// coverageThreshold is the minimum layer alpha for a pixel to belong to a
// face group.
const coverageThreshold = 128

// Renderer draws pick buffers with a reusable gg context.
type Renderer struct {
	dc     *gg.Context
	buf    *pick.Buffer
	width  int
	height int
}

// New creates a renderer for a width×height viewport.
func New(width, height int) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

// Render is a convenience wrapper that renders s once into a new buffer.
func Render(s *mesh.Scene, cam mesh.Camera, width, height int) (*pick.Buffer, error) {
	r := New(width, height)
	defer r.Close()
	return r.Render(s, cam)
}

// Resize changes the viewport size and reallocates the targets.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height && r.buf != nil {
		return
	}
	_ = r.Close()
	r.width, r.height = width, height
	r.buf = pick.NewBuffer(width, height)
	if width > 0 && height > 0 {
		r.dc = gg.NewContext(width, height)
	}
}

// Buffer returns the buffer written by the last Render.
func (r *Renderer) Buffer() *pick.Buffer {
	return r.buf
}

// Close releases the gg context.
func (r *Renderer) Close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}

// Render clears the buffer to the background and draws every registered
// face group of s as seen from cam.
func (r *Renderer) Render(s *mesh.Scene, cam mesh.Camera) (*pick.Buffer, error) {
	if r.dc == nil {
		return nil, pick.ErrInvalidSize
	}
	r.buf.Clear()

	groups := cam.Layout(s, r.width, r.height)
	for _, p := range groups {
		if err := r.draw(p); err != nil {
			return nil, err
		}
	}
	pick.Logger().Debug("ggpick: rendered", "groups", len(groups), "width", r.width, "height", r.height)
	return r.buf, nil
}

// draw fills the coverage of p on a cleared layer and copies the covered
// pixels into the pick buffer.
func (r *Renderer) draw(p mesh.Projected) error {
	r.dc.Clear()
	r.dc.SetColor(gg.White)
	for _, t := range p.Tris {
		r.dc.MoveTo(float64(t[0].X()), float64(t[0].Y()))
		r.dc.LineTo(float64(t[1].X()), float64(t[1].Y()))
		r.dc.LineTo(float64(t[2].X()), float64(t[2].Y()))
		r.dc.ClosePath()
		if err := r.dc.Fill(); err != nil {
			return err
		}
	}

	layer := toRGBA(r.dc.Image())
	c := p.Group.PickColor()
	for y := p.Bounds.Min.Y; y < p.Bounds.Max.Y; y++ {
		for x := p.Bounds.Min.X; x < p.Bounds.Max.X; x++ {
			if layer.Pix[layer.PixOffset(x, y)+3] >= coverageThreshold {
				r.buf.SetPixel(x, y, c)
			}
		}
	}
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Rect, img, img.Bounds().Min, draw.Src)
	return rgba
}
