package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/loam/ecs"
	"github.com/plus3/loam/ecs/debugui"
	debugui_ebiten "github.com/plus3/loam/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and drives the world with ImGui rendering.
type Game struct {
	world   *ecs.World
	backend debugui_ebiten.ImguiBackend
	input   *ecs.Cell[debugui.ImguiInputState]
}

func (g *Game) Update() error {
	// Begin the ImGui frame before running systems
	g.backend.BeginFrame()

	// One tick; the imgui system runs in the dependent phase
	g.world.Advance(1.0 / 60.0)

	// End the ImGui frame after systems complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create the Ebiten window and ImGui backend
	backend := debugui_ebiten.NewImguiBackend("Debug UI Example", 1280, 720)

	world := ecs.NewWorld(60)

	// Standard debug panels plus the render system
	input := debugui.Install(world)

	// Any entity can carry its own ImGui window
	ecs.AddComponent(world, world.NewEntity(), debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the world!")
			imgui.End()
		},
	})

	// Game code reads the input cell before handling its own clicks or keys
	game := &Game{
		world:   world,
		backend: backend,
		input:   input,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
