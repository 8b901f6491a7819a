// Package mesh provides the minimal scene model that pick operates on:
// objects made of vertices and named face groups, a camera, and scene
// description files.
//
// Face groups are the selectable components. Each group keeps a fixed
// back-reference to its object, which is what a pick resolves to in
// addition to the group itself.
package mesh

import (
	"fmt"
	"iter"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/pick"
)

// Object is a mesh with named face groups.
type Object struct {
	Name   string
	Verts  []mgl32.Vec3
	Groups []*FaceGroup
}

// NewObject creates an object over verts with no face groups.
func NewObject(name string, verts []mgl32.Vec3) *Object {
	return &Object{Name: name, Verts: verts}
}

// AddGroup appends a face group and sets its back-reference to o.
func (o *Object) AddGroup(name string, faces ...[3]int) *FaceGroup {
	g := &FaceGroup{Name: name, Faces: faces, parent: o}
	o.Groups = append(o.Groups, g)
	return g
}

// Group returns the face group with the given name, or nil.
func (o *Object) Group(name string) *FaceGroup {
	for _, g := range o.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Validate checks that every face references existing vertices.
func (o *Object) Validate() error {
	for _, g := range o.Groups {
		for i, f := range g.Faces {
			for _, v := range f {
				if v < 0 || v >= len(o.Verts) {
					return fmt.Errorf("%w: object %q group %q face %d: vertex %d out of range [0,%d)",
						ErrInvalidScene, o.Name, g.Name, i, v, len(o.Verts))
				}
			}
		}
	}
	return nil
}

// FaceGroup is a named set of triangles of an Object.
// It implements pick.Component and pick.ColorSetter.
type FaceGroup struct {
	Name  string
	Faces [][3]int

	parent *Object
	color  pick.RGB
}

// Owner returns the object the group belongs to.
func (g *FaceGroup) Owner() *Object {
	return g.parent
}

// PickColor returns the color the group is drawn with in the pick buffer.
// It is the background until the group is registered.
func (g *FaceGroup) PickColor() pick.RGB {
	return g.color
}

// SetPickColor stores the color assigned by the pick map.
func (g *FaceGroup) SetPickColor(c pick.RGB) {
	g.color = c
}

// Triangles iterates over the vertex positions of every face.
func (g *FaceGroup) Triangles() iter.Seq[[3]mgl32.Vec3] {
	return func(yield func([3]mgl32.Vec3) bool) {
		verts := g.parent.Verts
		for _, f := range g.Faces {
			if !yield([3]mgl32.Vec3{verts[f[0]], verts[f[1]], verts[f[2]]}) {
				return
			}
		}
	}
}

// String returns "object/group".
func (g *FaceGroup) String() string {
	if g.parent == nil {
		return g.Name
	}
	return g.parent.Name + "/" + g.Name
}
