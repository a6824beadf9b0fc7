//go:build darwin

package platform

import "os/exec"

const systemChimePath = "/System/Library/Sounds/Glass.aiff"

type chimePlayer struct{}

func newChimePlayer() ChimePlayer {
	if _, err := exec.LookPath("afplay"); err != nil {
		return silentChimePlayer{}
	}
	return &chimePlayer{}
}

func (player *chimePlayer) Play() error {
	return exec.Command("afplay", systemChimePath).Run()
}
