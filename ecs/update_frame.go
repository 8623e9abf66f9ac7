package ecs

// UpdateFrame carries the per-tick state handed to every system.
type UpdateFrame struct {
	// DeltaTime is the simulated time in seconds since the previous tick.
	DeltaTime float64
	// Elapsed is the total simulated time including this tick.
	Elapsed float64
	// Tick counts frames starting at 1.
	Tick     uint64
	Commands *Commands
}
