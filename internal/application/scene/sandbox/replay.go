package sandbox

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/application/replay"
	"github.com/younwookim/movekit/internal/application/system"
)

// checkpointTolerance is how far a replayed position may drift
const checkpointTolerance = 1e-6

// ErrReplayMismatch is returned when a replay does not end where it was recorded
var ErrReplayMismatch = errors.New("replay mismatch")

// RunReplay plays every recorded tick into the session at the recorded dt
// and returns the final player position. When the recording carries a
// final checkpoint the position must match it.
func RunReplay(ctx context.Context, s *Session, data *replay.ReplayData) (mgl64.Vec3, error) {
	dt := data.DT
	if dt <= 0 {
		dt = 1.0 / 60
	}

	replayer := replay.NewReplayer(*data)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		if _, err := s.Step(ctx, system.InputFromReplay(in), dt); err != nil {
			return mgl64.Vec3{}, fmt.Errorf("tick %d: %w", replayer.CurrentFrame()-1, err)
		}
	}

	pos := s.PlayerPosition()
	if err := verifyCheckpoint(data.Final, pos); err != nil {
		return pos, err
	}
	return pos, nil
}

func verifyCheckpoint(final *replay.Checkpoint, pos mgl64.Vec3) error {
	if final == nil {
		return nil
	}
	want := mgl64.Vec3{final.X, final.Y, final.Z}
	for i := 0; i < 3; i++ {
		if math.Abs(want[i]-pos[i]) > checkpointTolerance {
			return fmt.Errorf("%w: ended at %v, recorded %v", ErrReplayMismatch, pos, want)
		}
	}
	return nil
}
