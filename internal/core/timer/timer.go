package timer

import (
	"time"

	"focusflow/internal/core/model"
)

// State is a two-phase countdown state machine. It is a plain value with
// explicit ownership: mutate it only through Start, Pause, Reset and Tick.
// When Running is false the deadline is stale and remaining time is zero.
type State struct {
	Phase    Phase
	Running  bool
	Deadline time.Time
}

// NewState returns the canonical initial state: work phase, not running.
func NewState() State {
	return State{Phase: PhaseWork}
}

// Start begins (or restarts) the countdown for the current phase at full
// duration. Valid from any state and never fails; durations are trusted.
func (state *State) Start(now time.Time, config model.TimerConfig) {
	state.Deadline = now.Add(state.phaseDuration(config))
	state.Running = true
}

// Pause freezes the countdown. The stale deadline is ignored until the
// next Start. No-op when already idle.
func (state *State) Pause() {
	state.Running = false
}

// Reset unconditionally returns to the initial state.
func (state *State) Reset() {
	state.Running = false
	state.Phase = PhaseWork
	state.Deadline = time.Time{}
}

// Tick evaluates the countdown at the given instant. It returns the time
// remaining before expiry, zero when idle. When the running countdown has
// reached its deadline it reports expired, flips the phase and immediately
// starts the next phase from now, so cycles chain with no idle gap.
func (state *State) Tick(now time.Time, config model.TimerConfig) (remaining time.Duration, expired bool) {
	if !state.Running {
		return 0, false
	}
	remaining = state.Deadline.Sub(now)
	if remaining > 0 {
		return remaining, false
	}
	state.Phase = state.Phase.Next()
	state.Start(now, config)
	return 0, true
}

func (state *State) phaseDuration(config model.TimerConfig) time.Duration {
	if state.Phase == PhaseBreak {
		return config.Break
	}
	return config.Work
}
