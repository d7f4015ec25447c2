package replay

import "github.com/younwookim/skyquest/internal/application/system"

// Version is the current replay format version
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left held
	R bool `json:"r,omitempty"` // Right held
	J bool `json:"j,omitempty"` // Jump pressed
	A bool `json:"a,omitempty"` // Attack pressed
}

// Input converts the frame to simulation input. Opposite directions cancel.
func (f FrameInput) Input() system.Input {
	in := system.Input{Jump: f.J, Attack: f.A}
	if f.L {
		in.Horizontal--
	}
	if f.R {
		in.Horizontal++
	}
	return in
}

// FrameFromInput encodes one tick's input
func FrameFromInput(frame int, in system.Input) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Horizontal < 0,
		R: in.Horizontal > 0,
		J: in.Jump,
		A: in.Attack,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
