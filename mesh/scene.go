package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/pick"
)

var (
	// ErrInvalidScene is returned for scene content that cannot be built.
	ErrInvalidScene = errors.New("mesh: invalid scene")

	// ErrUnknownFormat is returned for scene files of an unknown type.
	ErrUnknownFormat = errors.New("mesh: unknown scene format")
)

// PickMap is the pick map type used by scenes.
type PickMap = pick.Map[*FaceGroup, *Object]

// Scene owns a list of objects and the pick map of their face groups.
// Adding an object registers its groups; removing one retires their codes.
// Rebuild starts a fresh pick session with compact codes.
type Scene struct {
	objects []*Object
	picks   *PickMap
}

// NewScene creates an empty scene. Options configure its pick map.
func NewScene(opts ...pick.MapOption) *Scene {
	return &Scene{picks: pick.NewMap[*FaceGroup, *Object](opts...)}
}

// Add validates o, appends it and registers its face groups in order.
// On error the scene is left unchanged.
func (s *Scene) Add(o *Object) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if slices.Contains(s.objects, o) {
		return fmt.Errorf("%w: object %q added twice", ErrInvalidScene, o.Name)
	}
	if free := s.picks.Cap() - int(s.picks.Next()) + 1; free < len(o.Groups) {
		return fmt.Errorf("object %q: %d face groups, %d codes left: %w",
			o.Name, len(o.Groups), free, pick.ErrCapacityExceeded)
	}
	if err := s.picks.RegisterAll(slices.Values(o.Groups)); err != nil {
		return fmt.Errorf("object %q: %w", o.Name, err)
	}
	s.objects = append(s.objects, o)
	return nil
}

// Remove drops o from the scene and retires the codes of its groups.
// The codes are not reused before the next Rebuild.
func (s *Scene) Remove(o *Object) bool {
	i := slices.Index(s.objects, o)
	if i < 0 {
		return false
	}
	for _, g := range o.Groups {
		s.picks.Remove(g)
		g.SetPickColor(pick.Background)
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	return true
}

// Rebuild discards the pick session and registers every face group again,
// object by object, starting from code 1.
func (s *Scene) Rebuild() error {
	s.picks.Reset()
	for _, o := range s.objects {
		if err := s.picks.RegisterAll(slices.Values(o.Groups)); err != nil {
			return fmt.Errorf("rebuild object %q: %w", o.Name, err)
		}
	}
	pick.Logger().Debug("mesh: scene rebuilt", "objects", len(s.objects), "groups", s.picks.Len())
	return nil
}

// Objects returns the objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Object returns the object with the given name, or nil.
func (s *Scene) Object(name string) *Object {
	for _, o := range s.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Picks returns the pick map of the scene.
func (s *Scene) Picks() *PickMap {
	return s.picks
}

// Picker returns a picker resolving samples from sampler against the
// scene's pick map.
func (s *Scene) Picker(sampler pick.Sampler, opts ...pick.PickerOption) *pick.Picker[*FaceGroup, *Object] {
	return pick.NewPicker(s.picks, sampler, opts...)
}
