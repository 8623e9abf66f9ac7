// Command skyraid-bench runs headless game sessions concurrently and reports
// tick timings and entity churn.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/city"
	"github.com/plus3/skyraid/config"
	"github.com/plus3/skyraid/logging"
	"github.com/plus3/skyraid/sim"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", runtime.NumCPU(), "The number of concurrent game sessions.")
	step := flag.Duration("step", time.Second/60, "Simulated time per tick.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *sessions < 1 {
		fmt.Fprintf(os.Stderr, "sessions must be at least 1, got %d\n", *sessions)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting stress test", zap.Int("sessions", *sessions), zap.Duration("duration", *duration))

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Step:           *step,
		Seed:           cfg.City.Seed,
		GCPauseMetrics: *gcPauseMetrics,
		Results:        make([]SessionResult, *sessions),
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i := range *sessions {
		g.Go(func() error {
			result, err := runSession(ctx, cfg, i, step.Seconds(), log)
			report.Results[i] = result
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("session failed", zap.Error(err))
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("ticks", report.TotalTicks))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// runSession drives one game until ctx expires. Sessions share nothing but
// the read-only config.
func runSession(ctx context.Context, cfg *config.Config, index int, step float64, base *zap.Logger) (SessionResult, error) {
	log, id := logging.Session(base)
	seed := fmt.Sprintf("%s-%d", cfg.City.Seed, index)

	sink := newCountingSink()
	game, err := sim.NewGame(sim.Options{
		Tuning:   cfg.Sim,
		Layout:   city.Generate(cfg.City, city.NewRand(seed)),
		Sink:     sink,
		Input:    autopilot(),
		Clock:    &sim.ManualClock{Step: step},
		Logger:   log,
		OnImpact: sink.impact,
		Rand:     city.NewRand(seed),
	})
	if err != nil {
		return SessionResult{}, err
	}
	if err := game.Start(ctx, asset.BuiltinLoader{}); err != nil {
		return SessionResult{}, err
	}

	result := SessionResult{
		ID:         id.String(),
		Seed:       seed,
		UpdateTime: Stats{Samples: make([]time.Duration, 0, 1024)},
	}

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			if err := game.Tick(); err != nil {
				return result, fmt.Errorf("session %s: %w", id, err)
			}
			result.UpdateTime.Samples = append(result.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	w := game.World()
	result.Ticks = int64(len(result.UpdateTime.Samples))
	result.Spawned = w.Spawner.Total()
	result.Fired = sink.added[sim.KindProjectile]
	result.Impacts = sink.impacts
	result.Systems = game.Stats().Systems

	game.Stop()
	_, _, result.Mismatched = sink.Stats()
	result.Leaked = sink.Len()
	result.UpdateTime.Finalize()

	log.Debug("session finished", zap.Int64("ticks", result.Ticks))
	return result, nil
}

// autopilot weaves between lanes while holding the trigger, boosting on the
// straight sections.
func autopilot() *sim.ScriptedInput {
	var script []sim.Intents
	legs := []sim.Intents{
		{Shoot: true, Accelerate: true},
		{Shoot: true, Left: true},
		{Shoot: true, Forward: true},
		{Shoot: true, Right: true},
		{Shoot: true, Right: true, Backward: true},
		{Shoot: true, Left: true},
	}
	for _, leg := range legs {
		for range 90 {
			script = append(script, leg)
		}
	}
	return &sim.ScriptedInput{Script: script, Loop: true}
}
