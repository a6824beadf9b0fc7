package timer

import "time"

// Phase represents the current cycle phase.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Next returns the phase that follows this one in the cycle.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// EventType defines the type of timer event.
type EventType string

const (
	// EventTick reports the countdown position once per tick interval.
	EventTick EventType = "tick"
	// EventPhaseChange reports a phase expiry and the auto-started next phase.
	EventPhaseChange EventType = "phase_change"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Running   bool
	Remaining time.Duration
	At        time.Time
}
