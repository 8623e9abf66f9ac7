package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/skyraid/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Step     time.Duration
	Seed     string

	// Results
	Results        []SessionResult
	TotalTicks     int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// SessionResult summarises one game.
type SessionResult struct {
	ID         string
	Seed       string
	Ticks      int64
	Spawned    int
	Fired      int
	Impacts    int
	Mismatched int
	// Leaked counts scene nodes left after Stop; anything but zero is a bug.
	Leaked     int
	UpdateTime Stats
	Systems    []ecs.SystemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Finalize merges every session's samples into the overall update time.
func (r *Report) Finalize() {
	r.UpdateTime.Samples = r.UpdateTime.Samples[:0]
	r.TotalTicks = 0
	for _, res := range r.Results {
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTime.Samples...)
		r.TotalTicks += res.Ticks
	}
	r.UpdateTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Skyraid Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Tick Step:** {{.Step}}
- **City Seed:** {{.Seed}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Sessions
| Session | Seed | Ticks | Spawned | Fired | Impacts | Mismatched | Leaked | Avg Tick |
|---------|------|-------|---------|-------|---------|------------|--------|----------|
{{range .Results}}| {{.ID}} | {{.Seed}} | {{.Ticks}} | {{.Spawned}} | {{.Fired}} | {{.Impacts}} | {{.Mismatched}} | {{.Leaked}} | {{.UpdateTime.Avg}} |
{{end}}
{{if .Results}}{{with index .Results 0}}
## System Timings (session {{.ID}})
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}{{end}}{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
