package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChimePlayer_OverrideCommand(t *testing.T) {
	player := NewChimePlayer("true")

	assert.IsType(t, commandChimePlayer{}, player)
	assert.NoError(t, player.Play())
}

func TestCommandChimePlayer_EmptyCommandIsNoop(t *testing.T) {
	player := commandChimePlayer{command: "   "}

	assert.NoError(t, player.Play())
}

func TestSilentChimePlayer(t *testing.T) {
	assert.NoError(t, silentChimePlayer{}.Play())
}
