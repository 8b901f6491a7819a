package pick

import (
	"errors"
	"slices"
	"testing"
)

// body and part stand in for a mesh object and its face groups.
type body struct {
	name string
}

type part struct {
	name  string
	owner *body
	color RGB
}

func (p *part) Owner() *body       { return p.owner }
func (p *part) SetPickColor(c RGB) { p.color = c }

func newPart(b *body, name string) *part {
	return &part{name: name, owner: b}
}

func mustRegister(t *testing.T, m *Map[*part, *body], p *part) RGB {
	t.Helper()
	rgb, err := m.Register(p)
	if err != nil {
		t.Fatalf("Register(%s) = %v", p.name, err)
	}
	return rgb
}

func TestRegisterAssignsSequentialColors(t *testing.T) {
	m := NewMap[*part, *body]()
	b := &body{name: "human"}
	x, y, z := newPart(b, "x"), newPart(b, "y"), newPart(b, "z")

	want := []RGB{{8, 0, 0}, {16, 0, 0}, {24, 0, 0}}
	for i, p := range []*part{x, y, z} {
		got := mustRegister(t, m, p)
		if got != want[i] {
			t.Errorf("Register(%s) = %v, want %v", p.name, got, want[i])
		}
		if p.color != want[i] {
			t.Errorf("%s.color = %v, want %v", p.name, p.color, want[i])
		}
		if code, _ := m.CodeOf(p); code != Code(i+1) {
			t.Errorf("CodeOf(%s) = %d, want %d", p.name, code, i+1)
		}
	}

	if got, ok := m.Resolve(RGB{8, 0, 0}); !ok || got != x {
		t.Errorf("Resolve((8,0,0)) = %v, %v; want x", got, ok)
	}
}

func TestRegisterInjective(t *testing.T) {
	m := NewMap[*part, *body]()
	seen := make(map[RGB]bool)
	for i := 0; i < 5000; i++ {
		rgb := mustRegister(t, m, &part{})
		if seen[rgb] {
			t.Fatalf("registration %d reused color %v", i, rgb)
		}
		seen[rgb] = true
	}
}

func TestResolveRoundTripFullCodeSpace(t *testing.T) {
	m := NewMap[*part, *body]()
	parts := make([]*part, MaxCode)
	for i := range parts {
		parts[i] = &part{}
		mustRegister(t, m, parts[i])
	}
	for i, p := range parts {
		if got, ok := m.Resolve(Code(i + 1).RGB()); !ok || got != p {
			t.Fatalf("Resolve(Code(%d).RGB()) did not return its component", i+1)
		}
	}
}

func TestResolveBackground(t *testing.T) {
	m := NewMap[*part, *body]()
	if _, ok := m.Resolve(Background); ok {
		t.Error("Resolve(Background) on empty map should miss")
	}
	mustRegister(t, m, &part{})
	if got, ok := m.Resolve(RGB{0, 0, 0}); ok || got != nil {
		t.Errorf("Resolve((0,0,0)) = %v, %v; want nil, false", got, ok)
	}
}

func TestResolveUnregisteredCode(t *testing.T) {
	m := NewMap[*part, *body]()
	mustRegister(t, m, &part{})
	if _, ok := m.Resolve(Code(2).RGB()); ok {
		t.Error("Resolve of a code that was never handed out should miss")
	}
	if _, ok := m.Resolve(RGB{255, 255, 255}); ok {
		t.Error("Resolve((255,255,255)) should miss")
	}
}

func TestResolveToleratesRenderingNoise(t *testing.T) {
	m := NewMap[*part, *body]()
	parts := make([]*part, 200)
	for i := range parts {
		parts[i] = &part{}
		mustRegister(t, m, parts[i])
	}

	// Channels are multiples of 8, so +0..+7 stays in the bucket while a
	// negative drift falls into the bucket below.
	for _, d := range []uint8{1, 2, 3} {
		for i, p := range parts {
			rgb := Code(i + 1).RGB()
			noisy := RGB{R: rgb.R + d, G: rgb.G + d, B: rgb.B + d}
			if got, ok := m.Resolve(noisy); !ok || got != p {
				t.Fatalf("Resolve(%v) with +%d drift missed code %d", noisy, d, i+1)
			}
		}
	}
}

func TestResolveNegativeDriftMayChangeBucket(t *testing.T) {
	m := NewMap[*part, *body]()
	a, b := &part{name: "a"}, &part{name: "b"}
	mustRegister(t, m, a) // (8,0,0)
	mustRegister(t, m, b) // (16,0,0)

	// 16-3 lands in a's bucket: a documented limitation, not a bug.
	if got, ok := m.Resolve(RGB{13, 0, 0}); !ok || got != a {
		t.Errorf("Resolve((13,0,0)) = %v, %v; want a", got, ok)
	}
	// 8-5 lands in the background bucket.
	if _, ok := m.Resolve(RGB{3, 0, 0}); ok {
		t.Error("Resolve((3,0,0)) should miss")
	}
}

func TestResolveWithOwner(t *testing.T) {
	m := NewMap[*part, *body]()
	human, prop := &body{name: "human"}, &body{name: "prop"}
	head, hat := newPart(human, "head"), newPart(prop, "hat")
	mustRegister(t, m, head)
	rgb := mustRegister(t, m, hat)

	g, owner, ok := m.ResolveWithOwner(rgb)
	if !ok || g != hat || owner != prop {
		t.Errorf("ResolveWithOwner(%v) = %v, %v, %v; want hat, prop, true", rgb, g, owner, ok)
	}

	g, owner, ok = m.ResolveWithOwner(Background)
	if ok || g != nil || owner != nil {
		t.Errorf("ResolveWithOwner(Background) = %v, %v, %v; want nil, nil, false", g, owner, ok)
	}
}

func TestResetRestartsCounter(t *testing.T) {
	m := NewMap[*part, *body]()
	x, y, z := &part{name: "x"}, &part{name: "y"}, &part{name: "z"}
	for _, p := range []*part{y, z, x} {
		mustRegister(t, m, p)
	}

	m.Reset()
	if m.Len() != 0 || m.Next() != 1 {
		t.Fatalf("after Reset: Len() = %d, Next() = %d; want 0, 1", m.Len(), m.Next())
	}
	if _, ok := m.Resolve(Code(2).RGB()); ok {
		t.Error("codes from the previous session should not resolve")
	}

	if got := mustRegister(t, m, x); got != (RGB{8, 0, 0}) {
		t.Errorf("first registration after Reset = %v, want (8,0,0)", got)
	}
	if got, ok := m.Resolve(RGB{8, 0, 0}); !ok || got != x {
		t.Errorf("Resolve((8,0,0)) = %v, %v; want x", got, ok)
	}
	if _, ok := m.CodeOf(y); ok {
		t.Error("y should not keep a code across sessions")
	}
}

func TestRemoveRetiresCode(t *testing.T) {
	m := NewMap[*part, *body]()
	a, b := &part{name: "a"}, &part{name: "b"}
	rgbA := mustRegister(t, m, a)
	mustRegister(t, m, b)

	if !m.Remove(a) {
		t.Fatal("Remove(a) = false, want true")
	}
	if m.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}
	if _, ok := m.Resolve(rgbA); ok {
		t.Error("removed component should not resolve")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	c := &part{name: "c"}
	if got := mustRegister(t, m, c); got != Code(3).RGB() {
		t.Errorf("Register after Remove = %v, want code 3 %v", got, Code(3).RGB())
	}
}

func TestRegisterAgainMovesToFreshCode(t *testing.T) {
	m := NewMap[*part, *body]()
	a := &part{name: "a"}
	first := mustRegister(t, m, a)
	second := mustRegister(t, m, a)

	if first == second {
		t.Fatalf("re-registration reused %v", first)
	}
	if _, ok := m.Resolve(first); ok {
		t.Error("previous code should be retired")
	}
	if got, ok := m.Resolve(second); !ok || got != a {
		t.Error("new code should resolve to a")
	}
	if a.color != second {
		t.Errorf("a.color = %v, want %v", a.color, second)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestCapacityExceeded(t *testing.T) {
	m := NewMap[*part, *body](WithCapacity(2))
	mustRegister(t, m, &part{})
	mustRegister(t, m, &part{})

	_, err := m.Register(&part{})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Register() beyond capacity = %v, want ErrCapacityExceeded", err)
	}
	if m.Next() != 3 {
		t.Errorf("Next() = %d after failed Register, want 3", m.Next())
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestDefaultCapacityIsFullCodeSpace(t *testing.T) {
	m := NewMap[*part, *body]()
	if m.Cap() != int(MaxCode) {
		t.Fatalf("Cap() = %d, want %d", m.Cap(), MaxCode)
	}
	for i := 0; i < int(MaxCode); i++ {
		if _, err := m.Register(&part{}); err != nil {
			t.Fatalf("Register #%d = %v", i+1, err)
		}
	}
	if _, err := m.Register(&part{}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Register #32768 = %v, want ErrCapacityExceeded", err)
	}
}

func TestRegisterAll(t *testing.T) {
	m := NewMap[*part, *body](WithCapacity(3))
	b := &body{}
	parts := []*part{newPart(b, "a"), newPart(b, "b"), newPart(b, "c"), newPart(b, "d")}

	err := m.RegisterAll(slices.Values(parts))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("RegisterAll() = %v, want ErrCapacityExceeded", err)
	}
	for i, p := range parts[:3] {
		if code, ok := m.CodeOf(p); !ok || code != Code(i+1) {
			t.Errorf("CodeOf(%s) = %d, %v; want %d", p.name, code, ok, i+1)
		}
	}
	if _, ok := m.CodeOf(parts[3]); ok {
		t.Error("d should not be registered")
	}
}

func TestAllSkipsRetired(t *testing.T) {
	m := NewMap[*part, *body]()
	a, b, c := &part{name: "a"}, &part{name: "b"}, &part{name: "c"}
	for _, p := range []*part{a, b, c} {
		mustRegister(t, m, p)
	}
	m.Remove(b)

	var codes []Code
	var names []string
	for code, p := range m.All() {
		codes = append(codes, code)
		names = append(names, p.name)
	}
	if !slices.Equal(codes, []Code{1, 3}) || !slices.Equal(names, []string{"a", "c"}) {
		t.Errorf("All() = %v %v, want [1 3] [a c]", codes, names)
	}
}

func TestLookupAndColorOf(t *testing.T) {
	m := NewMap[*part, *body]()
	a := &part{}
	mustRegister(t, m, a)

	if got, ok := m.Lookup(1); !ok || got != a {
		t.Error("Lookup(1) should return a")
	}
	for _, c := range []Code{NoCode, 2, MaxCode + 1} {
		if _, ok := m.Lookup(c); ok {
			t.Errorf("Lookup(%d) should miss", c)
		}
	}
	if rgb, ok := m.ColorOf(a); !ok || rgb != (RGB{8, 0, 0}) {
		t.Errorf("ColorOf(a) = %v, %v", rgb, ok)
	}
	if _, ok := m.ColorOf(&part{}); ok {
		t.Error("ColorOf(unregistered) should miss")
	}
}

func BenchmarkResolve(b *testing.B) {
	m := NewMap[*part, *body]()
	for range 1000 {
		_, _ = m.Register(&part{})
	}
	rgb := Code(777).RGB()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = m.Resolve(rgb)
	}
}
