package platform

import (
	"os/exec"
	"strings"
)

// ChimePlayer plays a short audible cue when a phase completes. Playback
// is best-effort; callers swallow errors.
type ChimePlayer interface {
	Play() error
}

// NewChimePlayer returns a player for this platform. A non-empty override
// command replaces the platform default.
func NewChimePlayer(override string) ChimePlayer {
	if strings.TrimSpace(override) != "" {
		return commandChimePlayer{command: override}
	}
	return newChimePlayer()
}

type commandChimePlayer struct {
	command string
}

func (player commandChimePlayer) Play() error {
	fields := strings.Fields(player.command)
	if len(fields) == 0 {
		return nil
	}
	return exec.Command(fields[0], fields[1:]...).Run()
}

type silentChimePlayer struct{}

func (silentChimePlayer) Play() error {
	return nil
}
