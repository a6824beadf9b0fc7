package timer

import (
	"sync"
	"time"

	"focusflow/internal/core/model"
)

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval time.Duration
}

// Snapshot is a read-only view of the timer for pull-style rendering.
type Snapshot struct {
	Phase     Phase
	Running   bool
	Remaining time.Duration
}

// Engine owns one timer State and drives it from a ticker goroutine,
// fanning out events to subscribed observers. Front-ends control the
// timer exclusively through Start, Pause and Reset.
type Engine struct {
	mu      sync.Mutex
	state   State
	config  model.TimerConfig
	options Options
	events  []chan Event
	stopCh  chan struct{}
	looping bool
}

// NewEngine creates an Engine with the provided phase durations.
func NewEngine(config model.TimerConfig, options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{
		state:   NewState(),
		config:  config,
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel. Emits never block; events
// are dropped when the buffer is full.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Run launches the ticking loop.
func (engine *Engine) Run() {
	engine.mu.Lock()
	if engine.looping {
		engine.mu.Unlock()
		return
	}
	engine.looping = true
	engine.mu.Unlock()

	go engine.loop()
}

// Stop terminates the ticking loop and closes observer channels.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.looping {
		engine.mu.Unlock()
		return
	}
	close(engine.stopCh)
	engine.looping = false
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start begins the countdown for the current phase at full duration.
func (engine *Engine) Start() {
	now := time.Now()
	engine.mu.Lock()
	engine.state.Start(now, engine.config)
	engine.emitTickLocked(now)
	engine.mu.Unlock()
}

// Pause freezes the countdown.
func (engine *Engine) Pause() {
	now := time.Now()
	engine.mu.Lock()
	engine.state.Pause()
	engine.emitTickLocked(now)
	engine.mu.Unlock()
}

// Reset returns the timer to the initial idle work state.
func (engine *Engine) Reset() {
	now := time.Now()
	engine.mu.Lock()
	engine.state.Reset()
	engine.emitTickLocked(now)
	engine.mu.Unlock()
}

// UpdateConfig swaps phase durations. A running countdown keeps its
// deadline; new durations apply from the next start or expiry.
func (engine *Engine) UpdateConfig(config model.TimerConfig) {
	engine.mu.Lock()
	engine.config = config
	engine.mu.Unlock()
}

// Config returns the current phase durations.
func (engine *Engine) Config() model.TimerConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

// Snapshot returns the current timer view.
func (engine *Engine) Snapshot() Snapshot {
	now := time.Now()
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Snapshot{
		Phase:     engine.state.Phase,
		Running:   engine.state.Running,
		Remaining: engine.remainingLocked(now),
	}
}

func (engine *Engine) loop() {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			return
		case tickTime := <-ticker.C:
			engine.tick(tickTime)
		}
	}
}

func (engine *Engine) tick(now time.Time) {
	engine.mu.Lock()
	_, expired := engine.state.Tick(now, engine.config)
	if expired {
		engine.emitLocked(Event{
			Type:      EventPhaseChange,
			Phase:     engine.state.Phase,
			Running:   true,
			Remaining: engine.remainingLocked(now),
			At:        now,
		})
	}
	engine.emitTickLocked(now)
	engine.mu.Unlock()
}

func (engine *Engine) remainingLocked(now time.Time) time.Duration {
	if !engine.state.Running {
		return 0
	}
	remaining := engine.state.Deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (engine *Engine) emitTickLocked(now time.Time) {
	engine.emitLocked(Event{
		Type:      EventTick,
		Phase:     engine.state.Phase,
		Running:   engine.state.Running,
		Remaining: engine.remainingLocked(now),
		At:        now,
	})
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
