package pick

import (
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
)

// Hit describes a successful pick.
type Hit[T Component[O], O any] struct {
	Component T
	Owner     O
	Code      Code

	// X and Y are the logical pointer coordinates that were picked.
	X, Y float64
}

// Picker connects a Map to the sampler of its pick buffer.
//
// The Map and the Sampler are borrowed; the scene that owns them decides
// when they are rebuilt. Picker is not safe for concurrent use.
type Picker[T Component[O], O any] struct {
	m       *Map[T, O]
	sampler Sampler
	scale   float64
}

// NewPicker creates a Picker resolving samples from s against m.
func NewPicker[T Component[O], O any](m *Map[T, O], s Sampler, opts ...PickerOption) *Picker[T, O] {
	o := defaultPickerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Picker[T, O]{m: m, sampler: s, scale: o.scale}
}

// SetSampler replaces the sampler, for example after the pick buffer has
// been re-rendered into a new target.
func (p *Picker[T, O]) SetSampler(s Sampler) {
	p.sampler = s
}

// Scale returns the device scale.
func (p *Picker[T, O]) Scale() float64 {
	return p.scale
}

// Pick resolves the component under the logical pointer position (x, y).
// Coordinates are scaled by the device scale and truncated toward zero;
// negative results sample the background. A miss returns ok == false and
// a nil error.
func (p *Picker[T, O]) Pick(x, y float64) (hit Hit[T, O], ok bool, err error) {
	px, py := p.pixel(x), p.pixel(y)
	sample, err := p.sampler.SamplePixel(px, py)
	if err != nil {
		return hit, false, fmt.Errorf("pick: sample (%d,%d): %w", px, py, err)
	}
	c, owner, ok := p.m.ResolveWithOwner(sample)
	if !ok {
		Logger().Debug("pick: miss", "x", px, "y", py, "rgb", sample.String())
		return hit, false, nil
	}
	code, _ := p.m.CodeOf(c)
	return Hit[T, O]{Component: c, Owner: owner, Code: code, X: x, Y: y}, true, nil
}

func (p *Picker[T, O]) pixel(v float64) int {
	v = math.Trunc(v * p.scale)
	if math.IsNaN(v) || v < 0 {
		return -1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// HandlePointer picks on a primary-button press and ignores every other
// pointer event. handled reports whether the event was a pick request.
func (p *Picker[T, O]) HandlePointer(ev gpucontext.PointerEvent) (hit Hit[T, O], ok, handled bool, err error) {
	if ev.Type != gpucontext.PointerDown || !ev.IsPrimary || ev.Button != gpucontext.ButtonLeft {
		return hit, false, false, nil
	}
	hit, ok, err = p.Pick(ev.X, ev.Y)
	return hit, ok, true, err
}

// Attach subscribes the Picker to src and calls fn for every hit.
// Misses are dropped; sampler failures are logged at warn level.
func (p *Picker[T, O]) Attach(src gpucontext.PointerEventSource, fn func(Hit[T, O])) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		hit, ok, handled, err := p.HandlePointer(ev)
		switch {
		case !handled:
		case err != nil:
			Logger().Warn("pick: pointer pick failed", "x", ev.X, "y", ev.Y, "err", err)
		case ok:
			fn(hit)
		}
	})
}
