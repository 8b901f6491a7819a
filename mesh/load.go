package mesh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pick"
)

// Format identifies a scene file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format for a file name by extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// File is the on-disk description of a scene.
type File struct {
	Camera  *CameraSpec  `toml:"camera,omitempty" yaml:"camera,omitempty"`
	Objects []ObjectSpec `toml:"objects" yaml:"objects"`
}

// CameraSpec describes a Camera. Zero fields take the DefaultCamera values.
type CameraSpec struct {
	Eye    *[3]float32 `toml:"eye,omitempty" yaml:"eye,omitempty"`
	Center *[3]float32 `toml:"center,omitempty" yaml:"center,omitempty"`
	Up     *[3]float32 `toml:"up,omitempty" yaml:"up,omitempty"`
	Fov    float32     `toml:"fov,omitempty" yaml:"fov,omitempty"`
	Near   float32     `toml:"near,omitempty" yaml:"near,omitempty"`
	Far    float32     `toml:"far,omitempty" yaml:"far,omitempty"`
}

// ObjectSpec describes an Object.
type ObjectSpec struct {
	Name   string       `toml:"name" yaml:"name"`
	Verts  [][3]float32 `toml:"verts" yaml:"verts"`
	Groups []GroupSpec  `toml:"groups" yaml:"groups"`
}

// GroupSpec describes a FaceGroup.
type GroupSpec struct {
	Name  string   `toml:"name" yaml:"name"`
	Faces [][3]int `toml:"faces" yaml:"faces"`
}

// Decode reads a scene file. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r).DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidScene, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidScene, err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return &f, nil
}

// ReadFile reads and decodes the scene file at path.
func ReadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Build creates the scene and camera described by f. Face groups are
// registered in file order.
func (f *File) Build(opts ...pick.MapOption) (*Scene, Camera, error) {
	cam := f.Camera.camera()
	s := NewScene(opts...)
	for i, spec := range f.Objects {
		if spec.Name == "" {
			return nil, cam, fmt.Errorf("%w: object %d has no name", ErrInvalidScene, i)
		}
		if s.Object(spec.Name) != nil {
			return nil, cam, fmt.Errorf("%w: duplicate object %q", ErrInvalidScene, spec.Name)
		}
		verts := make([]mgl32.Vec3, len(spec.Verts))
		for j, v := range spec.Verts {
			verts[j] = mgl32.Vec3(v)
		}
		o := NewObject(spec.Name, verts)
		for _, gs := range spec.Groups {
			if gs.Name == "" {
				return nil, cam, fmt.Errorf("%w: object %q has an unnamed group", ErrInvalidScene, spec.Name)
			}
			if o.Group(gs.Name) != nil {
				return nil, cam, fmt.Errorf("%w: object %q: duplicate group %q", ErrInvalidScene, spec.Name, gs.Name)
			}
			o.AddGroup(gs.Name, gs.Faces...)
		}
		if err := s.Add(o); err != nil {
			return nil, cam, err
		}
	}
	return s, cam, nil
}

// LoadFile reads the scene file at path and builds it.
func LoadFile(path string, opts ...pick.MapOption) (*Scene, Camera, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, DefaultCamera(), err
	}
	return f.Build(opts...)
}

func (c *CameraSpec) camera() Camera {
	cam := DefaultCamera()
	if c == nil {
		return cam
	}
	if c.Eye != nil {
		cam.Eye = mgl32.Vec3(*c.Eye)
	}
	if c.Center != nil {
		cam.Center = mgl32.Vec3(*c.Center)
	}
	if c.Up != nil {
		cam.Up = mgl32.Vec3(*c.Up)
	}
	if c.Fov > 0 {
		cam.FovY = c.Fov
	}
	if c.Near > 0 {
		cam.Near = c.Near
	}
	if c.Far > 0 {
		cam.Far = c.Far
	}
	return cam
}
