package sim

import "errors"

var (
	// ErrNotStarted is returned by Tick before a successful Start.
	ErrNotStarted = errors.New("game not started")
	// ErrAssetsUnavailable wraps a model load failure reported by Start.
	ErrAssetsUnavailable = errors.New("assets unavailable")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("game already started")
	// ErrStopped is returned by Start after Stop.
	ErrStopped = errors.New("game stopped")
	// ErrNoCity is returned by Start when no city layout was supplied.
	ErrNoCity = errors.New("no city layout")
)
