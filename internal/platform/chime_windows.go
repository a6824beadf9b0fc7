//go:build windows

package platform

import "os/exec"

type chimePlayer struct{}

func newChimePlayer() ChimePlayer {
	if _, err := exec.LookPath("powershell"); err != nil {
		return silentChimePlayer{}
	}
	return &chimePlayer{}
}

func (player *chimePlayer) Play() error {
	return exec.Command(
		"powershell",
		"-NoProfile",
		"-Command",
		"[System.Media.SystemSounds]::Asterisk.Play()",
	).Run()
}
