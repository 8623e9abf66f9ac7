package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/skyraid/scene"
	"github.com/plus3/skyraid/sim"
)

const pixelsPerUnit = 2.0

var buildingColors = []color.RGBA{
	{176, 190, 197, 255},
	{144, 164, 174, 255},
	{120, 144, 156, 255},
	{207, 216, 220, 255},
}

var (
	groundColor     = color.RGBA{38, 50, 56, 255}
	roadColor       = color.RGBA{55, 71, 79, 255}
	playerColor     = color.RGBA{255, 235, 59, 255}
	enemyColor      = color.RGBA{239, 83, 80, 255}
	projectileColor = color.RGBA{255, 255, 255, 255}
)

// hud collects what the overlay text shows beyond the world state.
type hud struct {
	impacts int
	last    sim.Contact
}

func (h *hud) record(c sim.Contact) {
	h.impacts++
	h.last = c
}

// renderer draws a top-down chase view: world x runs across the screen and
// world -z runs up it, centred on the chase camera.
type renderer struct {
	hud *hud
}

func newRenderer(h *hud) *renderer {
	return &renderer{hud: h}
}

func (r *renderer) project(screen *ebiten.Image, cam sim.Camera, p mgl64.Vec3) (float32, float32) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	sx := (p[0]-cam.Target[0])*pixelsPerUnit + float64(w)/2
	sy := (p[2]-cam.Target[2])*pixelsPerUnit + float64(h)*0.7
	return float32(sx), float32(sy)
}

func (r *renderer) rect(screen *ebiten.Image, cam sim.Camera, center, size mgl64.Vec3, c color.Color) {
	sx, sy := r.project(screen, cam, center)
	w := float32(size[0] * pixelsPerUnit)
	h := float32(size[2] * pixelsPerUnit)
	vector.DrawFilledRect(screen, sx-w/2, sy-h/2, w, h, c, false)
}

func (r *renderer) Draw(screen *ebiten.Image, graph *scene.Graph, world *sim.World) {
	screen.Fill(groundColor)
	if world == nil {
		ebitenutil.DebugPrint(screen, "loading...")
		return
	}
	cam := world.Camera

	for _, node := range graph.Nodes() {
		switch node.Kind {
		case sim.KindRoad:
			r.rect(screen, cam, node.Position, mgl64.Vec3{node.Size[0], 0, node.Size[2]}, roadColor)
		case sim.KindBuilding:
			r.rect(screen, cam, node.Position, node.Size, buildingColors[node.Variant%len(buildingColors)])
		}
	}

	for _, e := range world.Enemies.Iter() {
		box := e.Box()
		r.rect(screen, cam, box.Center(), box.Size(), enemyColor)
	}
	for _, p := range world.Projectiles.Iter() {
		r.rect(screen, cam, p.Position, p.Bounds.World.Size().Mul(4), projectileColor)
	}

	hitbox := world.Player.Hitbox.World
	r.rect(screen, cam, hitbox.Center(), hitbox.Size(), playerColor)

	p := world.Player
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"speed %.1f  alt %.1f  bank %+.2f  enemies %d/%d  impacts %d (%s)\narrows/WASD fly, space fire, shift boost, P pause, esc quit",
		p.Speed, p.Position[1], p.Bank, world.Spawner.Live(), world.Spawner.Total(), r.hud.impacts, r.hud.last.Kind,
	))
}
