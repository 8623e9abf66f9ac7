package sim

// Intents is the per-tick input snapshot.
type Intents struct {
	Forward    bool
	Backward   bool
	Left       bool
	Right      bool
	Shoot      bool
	Accelerate bool
}

// InputProvider exposes the current intents. Hosts update it between ticks;
// the frame driver reads one snapshot per tick.
type InputProvider interface {
	Snapshot() Intents
}

// StaticInput always reports the same intents.
type StaticInput struct {
	Intents Intents
}

func (s *StaticInput) Snapshot() Intents {
	return s.Intents
}

// InputFunc adapts a function to InputProvider.
type InputFunc func() Intents

func (f InputFunc) Snapshot() Intents {
	return f()
}

// ScriptedInput replays a fixed sequence of intents, one per snapshot.
// Once the script runs out it repeats the final entry, or starts over when Loop is set.
type ScriptedInput struct {
	Script []Intents
	Loop   bool
	next   int
}

func (s *ScriptedInput) Snapshot() Intents {
	if len(s.Script) == 0 {
		return Intents{}
	}
	i := min(s.next, len(s.Script)-1)
	if s.Loop {
		i = s.next % len(s.Script)
	}
	s.next++
	return s.Script[i]
}

// Reset rewinds the script.
func (s *ScriptedInput) Reset() {
	s.next = 0
}
