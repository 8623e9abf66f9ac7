// Command skyraid runs the flight game in an ebiten window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/city"
	"github.com/plus3/skyraid/config"
	debugui_ebiten "github.com/plus3/skyraid/ecs/debugui/ebiten"
	"github.com/plus3/skyraid/logging"
	"github.com/plus3/skyraid/scene"
	"github.com/plus3/skyraid/sim"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "skyraid:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file")
	modelPath := flag.String("model", "", "Path to a YAML model manifest (overrides config)")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *modelPath != "" {
		cfg.Model = *modelPath
	}
	if *debug {
		cfg.Debug.Overlay = true
	}

	if *dumpConfig {
		return config.Write(os.Stdout, cfg)
	}

	base, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	defer base.Sync()
	log, session := logging.Session(base)

	layout := city.Generate(cfg.City, city.NewRand(cfg.City.Seed))
	graph := scene.NewGraph()
	input := &keyboardInput{}
	status := &hud{}

	game, err := sim.NewGame(sim.Options{
		Tuning:   cfg.Sim,
		Layout:   layout,
		Sink:     graph,
		Input:    input,
		Clock:    &sim.ManualClock{Step: 1 / float64(cfg.Window.TPS)},
		Logger:   log,
		OnImpact: status.record,
	})
	if err != nil {
		return err
	}

	var loader asset.Loader = asset.BuiltinLoader{}
	if cfg.Model != "" {
		loader = asset.FileLoader{Path: cfg.Model}
	}
	if err := game.Start(context.Background(), loader); err != nil {
		return err
	}
	defer game.Stop()

	host := &Host{
		game:     game,
		graph:    graph,
		input:    input,
		renderer: newRenderer(status),
		log:      log,
	}

	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Debug.Overlay {
		overlay := newDebugOverlay(game, graph, cfg.Debug)
		host.attachOverlay(debugui_ebiten.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, overlay))
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	log.Info("starting session", zap.Stringer("session", session), zap.String("seed", cfg.City.Seed))
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
