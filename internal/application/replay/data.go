package replay

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F   int  `json:"f"`             // Tick number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up (depth +z)
	D   bool `json:"d,omitempty"`   // Down (depth -z)
	W   bool `json:"w,omitempty"`   // Walk
	JP  bool `json:"jp,omitempty"`  // JumpPressed
	Dsh bool `json:"dsh,omitempty"` // Dash
}

// Checkpoint is the feet position at the end of a recording
type Checkpoint struct {
	Tick int     `json:"tick"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// ReplayData contains all data needed to replay a session.
// Movement is deterministic for a fixed DT, so inputs plus the
// stage and tuning are enough to reproduce it.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Tuning    string       `json:"tuning"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Final     *Checkpoint  `json:"final,omitempty"`
}
