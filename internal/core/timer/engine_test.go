package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_StartEmitsImmediateTick(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})
	events := engine.Subscribe(5)

	engine.Start()

	select {
	case event := <-events:
		assert.Equal(t, EventTick, event.Type)
		assert.Equal(t, PhaseWork, event.Phase)
		assert.True(t, event.Running)
		assert.InDelta(t, (25 * time.Minute).Seconds(), event.Remaining.Seconds(), 1.0)
	default:
		t.Fatal("expected an immediate tick event after Start")
	}
}

func TestEngine_TickEmitsPhaseChangeOnExpiry(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})
	events := engine.Subscribe(5)

	engine.Start()
	<-events // drain the start tick

	// Drive the loop body directly with a tick past the deadline.
	engine.tick(time.Now().Add(26 * time.Minute))

	event := <-events
	require.Equal(t, EventPhaseChange, event.Type)
	assert.Equal(t, PhaseBreak, event.Phase)
	assert.True(t, event.Running)
	assert.InDelta(t, (5 * time.Minute).Seconds(), event.Remaining.Seconds(), 1.0)

	event = <-events
	assert.Equal(t, EventTick, event.Type)
	assert.Equal(t, PhaseBreak, event.Phase)
}

func TestEngine_SnapshotWhileIdle(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})

	snapshot := engine.Snapshot()

	assert.Equal(t, PhaseWork, snapshot.Phase)
	assert.False(t, snapshot.Running)
	assert.Equal(t, time.Duration(0), snapshot.Remaining)
}

func TestEngine_PauseThenSnapshot(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})

	engine.Start()
	engine.Pause()

	snapshot := engine.Snapshot()
	assert.Equal(t, PhaseWork, snapshot.Phase)
	assert.False(t, snapshot.Running)
	assert.Equal(t, time.Duration(0), snapshot.Remaining)
}

func TestEngine_UpdateConfigAppliesOnNextStart(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})

	engine.Start()
	engine.UpdateConfig(testConfig(50, 10))

	// The in-flight countdown keeps its deadline.
	snapshot := engine.Snapshot()
	assert.InDelta(t, (25 * time.Minute).Seconds(), snapshot.Remaining.Seconds(), 1.0)

	engine.Start()
	snapshot = engine.Snapshot()
	assert.InDelta(t, (50 * time.Minute).Seconds(), snapshot.Remaining.Seconds(), 1.0)
}

func TestEngine_StopClosesObservers(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})
	events := engine.Subscribe(1)

	engine.Run()
	engine.Stop()

	_, open := <-events
	assert.False(t, open)

	// Stop again is a no-op.
	engine.Stop()
}

func TestEngine_SlowObserverDoesNotBlock(t *testing.T) {
	engine := NewEngine(testConfig(25, 5), Options{})
	engine.Subscribe(1)

	// A full buffer must not block control operations.
	engine.Start()
	engine.Pause()
	engine.Reset()

	snapshot := engine.Snapshot()
	assert.Equal(t, PhaseWork, snapshot.Phase)
	assert.False(t, snapshot.Running)
}
