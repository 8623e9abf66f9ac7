package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/skyraid/ecs/debugui"
	debugui_ebiten "github.com/plus3/skyraid/ecs/debugui/ebiten"
	"github.com/plus3/skyraid/scene"
	"github.com/plus3/skyraid/sim"
	"go.uber.org/zap"
)

// Host implements ebiten.Game around one simulation session.
type Host struct {
	game     *sim.Game
	graph    *scene.Graph
	input    *keyboardInput
	renderer *renderer
	imgui    *debugui_ebiten.ImguiBackend
	log      *zap.Logger

	paused bool
}

func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.paused = !h.paused
		h.log.Info("pause toggled", zap.Bool("paused", h.paused))
	}
	if h.imgui != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.imgui.Toggle()
	}

	if !h.paused {
		if err := h.game.Tick(); err != nil {
			return err
		}
	}

	if h.imgui != nil {
		h.imgui.Update()
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.Draw(screen, h.graph, h.game.World())

	if h.imgui != nil {
		h.imgui.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.imgui != nil {
		h.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// attachOverlay shows the imgui overlay and stops flight controls from reacting
// while it has keyboard focus.
func (h *Host) attachOverlay(backend *debugui_ebiten.ImguiBackend) {
	h.imgui = backend
	h.input.captured = h.keyboardCaptured
}

func (h *Host) keyboardCaptured() bool {
	return debugui.CurrentInputState().WantCaptureKeyboard
}
