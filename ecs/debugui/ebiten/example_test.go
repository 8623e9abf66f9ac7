package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/ecs/debugui"
	debugui_ebiten "github.com/plus3/skyraid/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and draws the scheduler's debug overlay.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.scheduler.Once(1.0 / 60.0)

	// Build the ImGui frame after the systems ran so it shows this frame's stats
	g.imguiBackend.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

type noRemover struct{}

func (noRemover) Remove(ecs.EntityId) bool { return false }

func Example() {
	scheduler := ecs.NewScheduler(noRemover{})

	overlay := debugui.NewOverlay(
		debugui.NewPerformanceStats(scheduler.GetStats, 120),
		debugui.WindowFunc(func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the scheduler!")
			imgui.End()
		}),
	)

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: debugui_ebiten.New("ECS ImGui Example", 1280, 720, overlay),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
