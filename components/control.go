package components

import "github.com/yohamta/donburi"

// ControlData is one player's movement intent plus jump gating state.
// Left/Right/JumpHeld/JumpJustPressed are written by the input system each
// rendered frame; the counters tick inside the physics step.
type ControlData struct {
	PlayerIndex int

	Left            bool
	Right           bool
	JumpHeld        bool
	JumpJustPressed bool

	// BufferFrames arms a jump for a short window after the press.
	// CoyoteFrames keeps a jump legal shortly after walking off an edge.
	// RepeatDelay throttles held-jump auto-repeat after landing.
	BufferFrames int
	CoyoteFrames int
	RepeatDelay  int
}

var Control = donburi.NewComponentType[ControlData]()
