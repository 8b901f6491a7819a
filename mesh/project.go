package mesh

import (
	"cmp"
	"image"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Projected is a face group with its triangles in window coordinates.
type Projected struct {
	Group *FaceGroup

	// Tris holds the visible triangles, top-left origin.
	Tris [][3]mgl32.Vec2

	// Depth is the mean view-space Z of the visible vertices. The camera
	// looks down -Z, so lower is farther.
	Depth float32

	// Bounds covers every visible triangle, clipped to the viewport.
	Bounds image.Rectangle
}

// Layout projects every registered face group of s for a w×h viewport and
// returns the visible ones back to front. Groups with equal depth keep
// scene order. Triangles with a vertex behind the camera are dropped.
func (c Camera) Layout(s *Scene, w, h int) []Projected {
	view := c.View()
	mvp := c.Projection(w, h).Mul4(view)
	vp := image.Rect(0, 0, w, h)

	var out []Projected
	for _, o := range s.Objects() {
		for _, g := range o.Groups {
			if _, ok := s.Picks().CodeOf(g); !ok {
				continue
			}
			if p, ok := project(g, view, mvp, vp); ok {
				out = append(out, p)
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Projected) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return out
}

func project(g *FaceGroup, view, mvp mgl32.Mat4, vp image.Rectangle) (Projected, bool) {
	p := Projected{Group: g}
	w, h := float32(vp.Dx()), float32(vp.Dy())
	var depth float32
	var n int
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for tri := range g.Triangles() {
		var win [3]mgl32.Vec2
		var z float32
		visible := true
		for i, v := range tri {
			clip := mvp.Mul4x1(v.Vec4(1))
			if clip.W() <= 0 {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			win[i] = mgl32.Vec2{(ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h}
			z += view.Mul4x1(v.Vec4(1)).Z()
		}
		if !visible {
			continue
		}
		p.Tris = append(p.Tris, win)
		depth += z
		n += 3
		for _, v := range win {
			minX, maxX = math.Min(minX, float64(v.X())), math.Max(maxX, float64(v.X()))
			minY, maxY = math.Min(minY, float64(v.Y())), math.Max(maxY, float64(v.Y()))
		}
	}
	if n == 0 {
		return p, false
	}
	p.Depth = depth / float32(n)
	p.Bounds = image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(vp)
	return p, !p.Bounds.Empty()
}
