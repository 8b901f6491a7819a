package pick

import (
	"fmt"
	"iter"
)

// Component is a selectable scene element owned by a higher-level object,
// for example a face group owned by its mesh.
// Components are compared by identity, so pointers are the usual choice.
type Component[O any] interface {
	comparable

	// Owner returns the object the component belongs to.
	Owner() O
}

// ColorSetter is implemented by components that remember their pick color.
// Map.Register calls SetPickColor so the renderer can read it back later.
type ColorSetter interface {
	SetPickColor(RGB)
}

// Map assigns color codes to components and resolves sampled colors back
// to them. The zero value is not usable; create maps with NewMap.
//
// A Map holds one scene build session. Codes increase strictly from 1 and
// are never reused until Reset starts a new session.
type Map[T Component[O], O any] struct {
	comps    []T    // comps[code-1]
	live     []bool // live[code-1] is false once the code has been retired
	codes    map[T]Code
	count    int
	capacity int
}

// NewMap creates an empty Map.
func NewMap[T Component[O], O any](opts ...MapOption) *Map[T, O] {
	o := defaultMapOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Map[T, O]{
		codes:    make(map[T]Code),
		capacity: o.capacity,
	}
}

// Register assigns the next free code to c and returns its pick color.
// If c implements ColorSetter, its pick color is updated as well.
//
// Registering a component that is already registered moves it to a fresh
// code; its previous code is retired and stops resolving.
//
// Register returns ErrCapacityExceeded once the session has handed out
// Cap codes. The counter does not advance on failure.
func (m *Map[T, O]) Register(c T) (RGB, error) {
	if len(m.comps) >= m.capacity {
		Logger().Warn("pick: code space exhausted", "capacity", m.capacity)
		return Background, fmt.Errorf("%w: all %d codes in use", ErrCapacityExceeded, m.capacity)
	}

	if prev, ok := m.codes[c]; ok {
		m.retire(prev)
	}

	code := Code(len(m.comps) + 1)
	m.comps = append(m.comps, c)
	m.live = append(m.live, true)
	m.codes[c] = code
	m.count++

	rgb := code.RGB()
	if s, ok := any(c).(ColorSetter); ok {
		s.SetPickColor(rgb)
	}
	Logger().Debug("pick: registered component", "code", uint16(code), "rgb", rgb.String())
	return rgb, nil
}

// RegisterAll registers every component of seq in order.
// It stops at the first error; components registered before it keep
// their codes.
func (m *Map[T, O]) RegisterAll(seq iter.Seq[T]) error {
	for c := range seq {
		if _, err := m.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Remove retires the code of c. The code is not handed out again in this
// session. Remove reports whether c was registered.
func (m *Map[T, O]) Remove(c T) bool {
	code, ok := m.codes[c]
	if !ok {
		return false
	}
	m.retire(code)
	return true
}

func (m *Map[T, O]) retire(code Code) {
	i := int(code) - 1
	var zero T
	delete(m.codes, m.comps[i])
	m.comps[i] = zero
	m.live[i] = false
	m.count--
}

// Resolve returns the component drawn with the sampled color.
// The result is false for the background, for colors no component was
// assigned, and for retired codes. A miss is normal and not an error.
func (m *Map[T, O]) Resolve(sample RGB) (T, bool) {
	return m.Lookup(Decode(sample))
}

// ResolveWithOwner resolves sample like Resolve and also returns the owner
// of the component.
func (m *Map[T, O]) ResolveWithOwner(sample RGB) (T, O, bool) {
	c, ok := m.Resolve(sample)
	if !ok {
		var owner O
		return c, owner, false
	}
	return c, c.Owner(), true
}

// Lookup returns the component registered under code.
func (m *Map[T, O]) Lookup(code Code) (T, bool) {
	i := int(code) - 1
	if !code.Valid() || i >= len(m.comps) || !m.live[i] {
		var zero T
		return zero, false
	}
	return m.comps[i], true
}

// CodeOf returns the current code of c.
func (m *Map[T, O]) CodeOf(c T) (Code, bool) {
	code, ok := m.codes[c]
	return code, ok
}

// ColorOf returns the current pick color of c.
func (m *Map[T, O]) ColorOf(c T) (RGB, bool) {
	code, ok := m.codes[c]
	if !ok {
		return Background, false
	}
	return code.RGB(), true
}

// Len returns the number of live registrations.
func (m *Map[T, O]) Len() int {
	return m.count
}

// Cap returns the number of codes the Map hands out per session.
func (m *Map[T, O]) Cap() int {
	return m.capacity
}

// Next returns the code the next successful Register will assign.
func (m *Map[T, O]) Next() Code {
	return Code(len(m.comps) + 1)
}

// All iterates over live registrations in code order.
func (m *Map[T, O]) All() iter.Seq2[Code, T] {
	return func(yield func(Code, T) bool) {
		for i, c := range m.comps {
			if !m.live[i] {
				continue
			}
			if !yield(Code(i+1), c) {
				return
			}
		}
	}
}

// Reset discards every registration and restarts the counter, beginning a
// new build session. Codes from the previous session no longer resolve.
func (m *Map[T, O]) Reset() {
	Logger().Debug("pick: session reset", "registered", m.count, "handed_out", len(m.comps))
	clear(m.comps)
	m.comps = m.comps[:0]
	m.live = m.live[:0]
	clear(m.codes)
	m.count = 0
}
