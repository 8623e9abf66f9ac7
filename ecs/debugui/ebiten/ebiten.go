// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and renders a debugui.Overlay once per frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
}

// New creates the Ebiten window through the ImGui backend. The window title
// and size apply to the ebiten game started afterwards.
func New(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		overlay:       overlay,
	}
}

// Update draws the overlay into a fresh ImGui frame. Call it from ebiten.Game.Update
// after the simulation has ticked.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.overlay.Render()
	b.EndFrame()
}

// Draw composites the ImGui output on top of screen.
func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

// Toggle flips overlay visibility.
func (b *ImguiBackend) Toggle() {
	b.overlay.Visible = !b.overlay.Visible
}
