// Command pickview opens a window showing a scene in its pick colors.
// Clicking a face group prints it in the window title and on stdout.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/pick"
	"github.com/gogpu/pick/integration/ebitenpick"
	"github.com/gogpu/pick/mesh"
)

type game struct {
	scene  *mesh.Scene
	cam    mesh.Camera
	target *ebitenpick.Target
	picker *pick.Picker[*mesh.FaceGroup, *mesh.Object]

	width, height int
	dirty         bool
	status        string
}

func (g *game) Update() error {
	if g.dirty {
		if g.target != nil {
			g.target.Deallocate()
		}
		g.target = ebitenpick.New(g.width, g.height)
		g.target.Render(g.scene, g.cam)
		g.picker.SetSampler(g.target)
		g.dirty = false
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()
	hit, ok, err := g.picker.Pick(float64(x), float64(y))
	switch {
	case err != nil:
		g.status = "error: " + err.Error()
	case ok:
		g.status = fmt.Sprintf("%v %v", hit.Component, hit.Code)
	default:
		g.status = "none"
	}
	fmt.Println(g.status)
	ebiten.SetWindowTitle("pickview: " + g.status)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.target != nil {
		screen.DrawImage(g.target.Image(), nil)
	}
	ebitenutil.DebugPrint(screen, g.status)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (.toml, .yaml or .yml)")
		width     = flag.Int("width", 800, "window width")
		height    = flag.Int("height", 600, "window height")
	)
	flag.Parse()

	scene, cam, err := mesh.LoadFile(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	g := &game{scene: scene, cam: cam, status: "click a face group"}
	g.picker = scene.Picker(pick.SamplerFunc(func(int, int) (pick.RGB, error) {
		return pick.Background, nil
	}))

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("pickview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
