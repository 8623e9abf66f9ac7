package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyraid/config"
	"github.com/plus3/skyraid/ecs/debugui"
	"github.com/plus3/skyraid/scene"
	"github.com/plus3/skyraid/sim"
)

func newDebugOverlay(game *sim.Game, graph *scene.Graph, cfg config.DebugConfig) *debugui.Overlay {
	return debugui.NewOverlay(
		debugui.NewPerformanceStats(game.Stats, cfg.HistoryFrames),
		debugui.NewEntityBrowser("Entities", []string{"Kind", "Position", "Detail"}, func() []debugui.EntityRow {
			return entityRows(game.World())
		}, cfg.PageSize),
		debugui.WindowFunc(func() { renderPlayer(game.World(), graph) }),
	)
}

func vec(v [3]float64) string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", v[0], v[1], v[2])
}

func entityRows(w *sim.World) []debugui.EntityRow {
	if w == nil {
		return nil
	}

	rows := make([]debugui.EntityRow, 0, w.Enemies.Len()+w.Projectiles.Len())
	for id, e := range w.Enemies.Iter() {
		rows = append(rows, debugui.EntityRow{
			ID:      id,
			Columns: []string{"enemy", vec(e.Position), fmt.Sprintf("#%d lane %d", e.Ordinal, e.Lane)},
		})
	}
	for id, p := range w.Projectiles.Iter() {
		rows = append(rows, debugui.EntityRow{
			ID:      id,
			Columns: []string{"projectile", vec(p.Position), fmt.Sprintf("ttl %.2f", p.TTL)},
		})
	}
	return rows
}

func renderPlayer(w *sim.World, graph *scene.Graph) {
	if !imgui.BeginV("Player", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	if w == nil {
		imgui.Text("Not started")
		imgui.End()
		return
	}

	p := w.Player
	imgui.Text(fmt.Sprintf("Position: %s", vec(p.Position)))
	imgui.Text(fmt.Sprintf("Speed: %.2f / %.2f", p.Speed, w.Tuning.MaxSpeed))
	imgui.Text(fmt.Sprintf("Bank: %+.3f (max %.3f)", p.Bank, w.Tuning.MaxTilt))
	imgui.Text(fmt.Sprintf("Animation: %s %.2fs", w.Animation.State, w.Animation.Time))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Enemies: %d live, %d spawned", w.Spawner.Live(), w.Spawner.Total()))

	added, removed, duplicates := graph.Stats()
	imgui.Text(fmt.Sprintf("Scene: %d nodes (%d added, %d removed, %d mismatched)", graph.Len(), added, removed, duplicates))

	if imgui.TreeNodeStr("Contacts") {
		for _, c := range w.Contacts {
			imgui.BulletText(fmt.Sprintf("%s %d -> %d", c.Kind, c.A.Index(), c.B.Index()))
		}
		imgui.TreePop()
	}

	imgui.End()
}
