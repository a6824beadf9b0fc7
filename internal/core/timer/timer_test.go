package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"focusflow/internal/core/model"
)

func testConfig(workMinutes, breakMinutes int) model.TimerConfig {
	return model.Settings{
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
		Theme:        model.ThemeDark,
	}.TimerConfig()
}

func TestNewState_InitialState(t *testing.T) {
	state := NewState()

	assert.Equal(t, PhaseWork, state.Phase)
	assert.False(t, state.Running)
	assert.True(t, state.Deadline.IsZero())
}

func TestStart_SetsDeadlineFromPhaseDuration(t *testing.T) {
	config := testConfig(25, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Start(now, config)

	assert.True(t, state.Running)
	assert.Equal(t, now.Add(25*time.Minute), state.Deadline)

	remaining, expired := state.Tick(now, config)
	assert.False(t, expired)
	assert.Equal(t, 25*time.Minute, remaining)
}

func TestStart_RestartsAtFullDuration(t *testing.T) {
	config := testConfig(25, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Start(now, config)

	// Restart 10 minutes in; the countdown returns to full duration.
	later := now.Add(10 * time.Minute)
	state.Start(later, config)

	remaining, expired := state.Tick(later, config)
	assert.False(t, expired)
	assert.Equal(t, 25*time.Minute, remaining)
}

func TestStart_AfterResetReturnsFullWorkDuration(t *testing.T) {
	for _, workMinutes := range []int{1, 25, 90, 180} {
		config := testConfig(workMinutes, 5)
		now := time.Unix(1_000_000, 0)

		state := NewState()
		state.Reset()
		state.Start(now, config)

		remaining, expired := state.Tick(now, config)
		assert.False(t, expired)
		assert.Equal(t, time.Duration(workMinutes)*time.Minute, remaining)
	}
}

func TestPause_Idempotent(t *testing.T) {
	config := testConfig(25, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Start(now, config)

	state.Pause()
	once := state

	state.Pause()
	assert.Equal(t, once, state)
	assert.False(t, state.Running)
}

func TestReset_Unconditional(t *testing.T) {
	config := testConfig(25, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Start(now, config)
	state.Phase = PhaseBreak
	state.Start(now, config)

	state.Reset()

	assert.Equal(t, PhaseWork, state.Phase)
	assert.False(t, state.Running)
	assert.True(t, state.Deadline.IsZero())
}

func TestTick_IdleReturnsZeroWithoutMutation(t *testing.T) {
	config := testConfig(25, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Phase = PhaseBreak

	before := state
	remaining, expired := state.Tick(now, config)

	assert.Equal(t, time.Duration(0), remaining)
	assert.False(t, expired)
	assert.Equal(t, before, state)
}

func TestTick_AutoChainsIntoBreak(t *testing.T) {
	config := testConfig(1, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Start(now, config)

	remaining, expired := state.Tick(now.Add(61*time.Second), config)

	assert.True(t, expired)
	assert.Equal(t, time.Duration(0), remaining)
	assert.Equal(t, PhaseBreak, state.Phase)
	assert.True(t, state.Running)
	assert.Equal(t, now.Add(61*time.Second).Add(5*time.Minute), state.Deadline)
}

func TestTick_FullCycleScenario(t *testing.T) {
	config := testConfig(25, 5)
	epoch := time.Unix(0, 0)

	state := NewState()
	state.Start(epoch, config)
	assert.Equal(t, epoch.Add(1500*time.Second), state.Deadline)

	// Work expires at t=1500; break runs until 1500+300=1800.
	_, expired := state.Tick(epoch.Add(1500*time.Second), config)
	assert.True(t, expired)
	assert.Equal(t, PhaseBreak, state.Phase)
	assert.Equal(t, epoch.Add(1800*time.Second), state.Deadline)

	// Break expires at t=1800; work runs until 1800+1500=3300.
	_, expired = state.Tick(epoch.Add(1800*time.Second), config)
	assert.True(t, expired)
	assert.Equal(t, PhaseWork, state.Phase)
	assert.Equal(t, epoch.Add(3300*time.Second), state.Deadline)
}

func TestTick_OverdueDeadlineStillChainsFromNow(t *testing.T) {
	config := testConfig(25, 5)
	now := time.Unix(1_000_000, 0)

	state := NewState()
	state.Start(now, config)

	// A laptop sleep can push the tick far past the deadline; the next
	// phase still starts from the observed now.
	late := now.Add(2 * time.Hour)
	_, expired := state.Tick(late, config)

	assert.True(t, expired)
	assert.Equal(t, PhaseBreak, state.Phase)
	assert.Equal(t, late.Add(5*time.Minute), state.Deadline)
}

func TestPhase_Next(t *testing.T) {
	assert.Equal(t, PhaseBreak, PhaseWork.Next())
	assert.Equal(t, PhaseWork, PhaseBreak.Next())
}
