// Package pick implements mouse picking with unique color IDs.
//
// # Overview
//
// Every selectable component of a scene (typically a face group of a mesh)
// is registered with a [Map] and receives a compact color code. The renderer
// draws each component into an off-screen pick buffer using that color
// instead of its real appearance, under the same camera as the visible
// frame. When the user clicks, a single pixel is read back at the cursor
// position and the Map turns the sampled color into the component that was
// drawn there.
//
// # Quick Start
//
//	m := pick.NewMap[*mesh.FaceGroup, *mesh.Object]()
//
//	// Scene build: one code per face group.
//	// Register also stores the color on components that implement
//	// ColorSetter.
//	if err := m.RegisterAll(slices.Values(obj.Groups)); err != nil {
//	    return err
//	}
//
//	// Interaction: resolve the pixel under the cursor.
//	rgb, _ := buf.SamplePixel(x, y)
//	if g, obj, ok := m.ResolveWithOwner(rgb); ok {
//	    fmt.Println(obj.Name, g.Name)
//	}
//
// # Encoding
//
// A [Code] is a 15-bit integer in [1, 32767]; 0 is the background. Each
// channel carries five bits of the code shifted left by three:
//
//	R = (code       & 31) << 3
//	G = (code >>  5 & 31) << 3
//	B = (code >> 10 & 31) << 3
//
// Decoding divides every channel by 8 with truncation, so a sampled channel
// may drift by up to 7 upwards (or stay inside its 8-wide bucket) and still
// decode to the same code. Renderers must draw pick colors without blending,
// lighting, fog or multisampling.
//
// # Lifecycle
//
// A Map belongs to one scene build session. Codes are handed out
// monotonically from 1 and never reused within a session; [Map.Reset]
// starts a new session when the set of selectable components changes.
//
// # Sub-packages
//
// Package mesh provides a minimal scene model whose Scene owns a Map.
// The integration packages produce pick buffers for it: ggpick renders on
// the CPU with gg, ebitenpick draws into an ebiten image, and glpick reads
// back an OpenGL framebuffer. Any of them can feed a [Picker].
//
// # Thread Safety
//
// Map, Buffer and Picker are not safe for concurrent use. Registration
// happens while the scene is built; resolution happens on the input thread
// afterwards.
package pick
