package sandbox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/movekit/internal/application/replay"
	"github.com/younwookim/movekit/internal/application/scene"
	"github.com/younwookim/movekit/internal/application/state"
)

func TestSandbox_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Sandbox)(nil)
}

func TestNewSandbox(t *testing.T) {
	sb := New(newDemoSession(t, 1), nil, 640, 480, 32)

	assert.Equal(t, state.StatePlaying, sb.State())
	assert.Nil(t, sb.recorder)
	assert.Nil(t, sb.replayer)
}

func TestSandbox_Update_StepsWhilePlaying(t *testing.T) {
	s := newDemoSession(t, 0)
	sb := New(s, nil, 640, 480, 32)

	next, err := sb.Update(testDT)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, 1, s.Tick())
}

func TestSandbox_PausedDoesNotStep(t *testing.T) {
	s := newDemoSession(t, 0)
	sb := New(s, nil, 640, 480, 32)
	sb.state = state.StatePaused

	_, err := sb.Update(testDT)

	require.NoError(t, err)
	assert.Equal(t, 0, s.Tick())
}

func TestSandbox_RecordsAndSavesOnExit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "run.json")
	sb := New(newDemoSession(t, 0), nil, 640, 480, 32)
	sb.Record(filename, testDT)

	for i := 0; i < 12; i++ {
		_, err := sb.Update(testDT)
		require.NoError(t, err)
	}
	assert.Equal(t, 12, sb.recorder.FrameCount())

	sb.OnExit()
	assert.False(t, sb.recorder.IsRecording())

	data, err := replay.LoadReplay(filename)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 12)
	assert.Equal(t, "demo", data.Stage)
	require.NotNil(t, data.Final)
	assert.InDelta(t, 2.5, data.Final.X, 1e-9)
}

func TestSandbox_ReplayFinishes(t *testing.T) {
	data := recordSession(t)
	s := newDemoSession(t, 2)
	sb := New(s, nil, 640, 480, 32)
	sb.Replay(data)
	assert.Equal(t, state.StateReplaying, sb.State())

	for i := 0; i <= len(data.Frames); i++ {
		_, err := sb.Update(data.DT)
		require.NoError(t, err)
	}

	assert.Equal(t, state.StateFinished, sb.State())
	assert.Equal(t, len(data.Frames), s.Tick())
	assert.NoError(t, verifyCheckpoint(data.Final, s.PlayerPosition()))

	// finished replays stay put
	_, err := sb.Update(data.DT)
	require.NoError(t, err)
	assert.Equal(t, len(data.Frames), s.Tick())
}

func TestSandbox_WorldToScreen(t *testing.T) {
	sb := New(newDemoSession(t, 0), nil, 640, 480, 32)

	x, y := sb.worldToScreen(3, 2, 2, 1)

	assert.Equal(t, 352.0, x)
	assert.Equal(t, 208.0, y)
}
