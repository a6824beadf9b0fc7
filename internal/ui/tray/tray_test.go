package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"focusflow/internal/core/timer"
)

func TestFormatStatus(t *testing.T) {
	cases := []struct {
		name      string
		phase     timer.Phase
		running   bool
		remaining time.Duration
		want      string
	}{
		{"work counting down", timer.PhaseWork, true, 24*time.Minute + 59*time.Second, "F 24:59"},
		{"break counting down", timer.PhaseBreak, true, 4*time.Minute + 59*time.Second, "B 04:59"},
		{"idle shows zeros", timer.PhaseWork, false, 10 * time.Minute, "F 00:00"},
		{"idle break phase keeps letter", timer.PhaseBreak, false, 0, "B 00:00"},
		{"negative clamps to zero", timer.PhaseWork, true, -3 * time.Second, "F 00:00"},
		{"long remaining", timer.PhaseWork, true, 180 * time.Minute, "F 180:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatStatus(tc.phase, tc.running, tc.remaining))
		})
	}
}
