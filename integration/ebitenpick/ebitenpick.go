// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenpick draws the pick buffer of a mesh.Scene into an
// offscreen ebiten image and samples it.
//
// Triangles are drawn with BlendCopy and without anti-aliasing, so each
// covered pixel holds exactly one pick color. Face groups are drawn back to
// front by mean depth.
//
// ebiten only allows reading pixels once the game loop has started, so
// SamplePixel and ReadBuffer must be called from Update or Draw.
package ebitenpick

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/pick"
	"github.com/gogpu/pick/mesh"
)

// maxVertices is the vertex limit of a single DrawTriangles call with
// uint16 indices.
const maxVertices = 1 << 16

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Target is an offscreen pick buffer.
type Target struct {
	img  *ebiten.Image
	opts ebiten.DrawTrianglesOptions

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ pick.Sampler = (*Target)(nil)

// New creates a width×height target.
func New(width, height int) *Target {
	return &Target{
		img: ebiten.NewImage(width, height),
		opts: ebiten.DrawTrianglesOptions{
			Blend:     ebiten.BlendCopy,
			AntiAlias: false,
		},
	}
}

// Image returns the offscreen image, for debug overlays.
func (t *Target) Image() *ebiten.Image {
	return t.img
}

// Deallocate releases the GPU memory of the target.
func (t *Target) Deallocate() {
	t.img.Deallocate()
}

// Render clears the target to the background and draws every registered
// face group of s as seen from cam.
func (t *Target) Render(s *mesh.Scene, cam mesh.Camera) {
	b := t.img.Bounds()
	t.img.Fill(pick.Background.Color())

	groups := cam.Layout(s, b.Dx(), b.Dy())
	for _, p := range groups {
		t.draw(p)
	}
	t.flush()
	pick.Logger().Debug("ebitenpick: rendered", "groups", len(groups), "width", b.Dx(), "height", b.Dy())
}

func (t *Target) draw(p mesh.Projected) {
	c := p.Group.PickColor()
	r, g, bl := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	for _, tri := range p.Tris {
		if len(t.vertices)+3 > maxVertices {
			t.flush()
		}
		base := uint16(len(t.vertices))
		for _, v := range tri {
			t.vertices = append(t.vertices, ebiten.Vertex{
				DstX: v.X(), DstY: v.Y(),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: bl, ColorA: 1,
			})
		}
		t.indices = append(t.indices, base, base+1, base+2)
	}
}

func (t *Target) flush() {
	if len(t.indices) == 0 {
		return
	}
	t.img.DrawTriangles(t.vertices, t.indices, whiteSubImage, &t.opts)
	t.vertices = t.vertices[:0]
	t.indices = t.indices[:0]
}

// SamplePixel returns the pick color at (x, y).
// Coordinates outside the target sample the background.
func (t *Target) SamplePixel(x, y int) (pick.RGB, error) {
	if !(image.Point{X: x, Y: y}).In(t.img.Bounds()) {
		return pick.Background, nil
	}
	c := t.img.At(x, y).(color.RGBA)
	return pick.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// ReadBuffer copies the whole target into a new pick.Buffer.
func (t *Target) ReadBuffer() *pick.Buffer {
	b := t.img.Bounds()
	buf := pick.NewBuffer(b.Dx(), b.Dy())
	t.img.ReadPixels(buf.Pixels())
	return buf
}
