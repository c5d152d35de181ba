package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MoverData drives a platform along its waypoints. DeltaX/DeltaY hold the
// displacement applied this physics step so riders can consume it without
// drift; VelX/VelY are the equivalent velocity for launch momentum.
type MoverData struct {
	Waypoints []math.Vec2
	Target    int
	Forward   bool

	Speed    float64 // px/s
	WaitTime float64 // seconds paused at each waypoint
	WaitLeft float64
	Loop     bool // true wraps to the first waypoint, false ping-pongs

	DeltaX float64
	DeltaY float64
	VelX   float64
	VelY   float64
}

var Mover = donburi.NewComponentType[MoverData]()
