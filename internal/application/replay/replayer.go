package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	Walk        bool
	JumpPressed bool
	Dash        bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.DT < 0 {
		return nil, fmt.Errorf("invalid replay dt %v", data.DT)
	}
	return &data, nil
}

// GetInput returns the input for the current tick and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:        fi.L,
		Right:       fi.R,
		Up:          fi.U,
		Down:        fi.D,
		Walk:        fi.W,
		JumpPressed: fi.JP,
		Dash:        fi.Dsh,
	}, true
}

// CurrentFrame returns the current tick number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of ticks
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every tick has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle input)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		Tuning:    "tuning.yaml",
		DT:        dt,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
