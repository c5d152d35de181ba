package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Solid      = donburi.NewTag().SetName("Solid")
	Mover      = donburi.NewTag().SetName("Mover")
	Ramp       = donburi.NewTag().SetName("Ramp")
	ChainLink  = donburi.NewTag().SetName("ChainLink")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Goal       = donburi.NewTag().SetName("Goal")
)

// Resolv tags for physics collision
const (
	ResolvPlayer     = "player"
	ResolvSolid      = "solid"
	ResolvOneWay     = "oneway"
	ResolvIce        = "ice"
	ResolvBouncy     = "bouncy"
	ResolvBreakable  = "breakable"
	ResolvSpike      = "spike"
	ResolvMover      = "mover"
	ResolvRamp       = "ramp"
	ResolvCheckpoint = "checkpoint"
	ResolvGoal       = "goal"

	// Ramp facing tags
	RampUpRight = "ramp_up_right"
	RampUpLeft  = "ramp_up_left"
)
