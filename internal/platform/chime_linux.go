//go:build linux

package platform

import "os/exec"

// Freedesktop and ALSA ship stock event sounds on most distributions.
var chimeCandidates = [][]string{
	{"paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"},
	{"aplay", "-q", "/usr/share/sounds/alsa/Front_Center.wav"},
}

type chimePlayer struct {
	command []string
}

func newChimePlayer() ChimePlayer {
	for _, candidate := range chimeCandidates {
		if _, err := exec.LookPath(candidate[0]); err == nil {
			return &chimePlayer{command: candidate}
		}
	}
	return silentChimePlayer{}
}

func (player *chimePlayer) Play() error {
	return exec.Command(player.command[0], player.command[1:]...).Run()
}
