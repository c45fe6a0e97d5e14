package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSandboxState_String(t *testing.T) {
	tests := []struct {
		state    SandboxState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplaying, "Replaying"},
		{StateFinished, "Finished"},
		{SandboxState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestSandboxState_Ticking(t *testing.T) {
	assert.True(t, StatePlaying.Ticking())
	assert.True(t, StateReplaying.Ticking())
	assert.False(t, StatePaused.Ticking())
	assert.False(t, StateFinished.Ticking())
}
