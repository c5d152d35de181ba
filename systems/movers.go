package systems

import (
	"math"

	"github.com/automoto/chainbound/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovers advances every moving platform along its waypoints and
// records the per-step displacement riders consume later the same step.
func UpdateMovers(e *ecs.ECS, dt float64) {
	for entry := range components.Mover.Iter(e.World) {
		stepMover(entry, dt)
	}
}

func stepMover(entry *donburi.Entry, dt float64) {
	mv := components.Mover.Get(entry)
	obj := components.Object.Get(entry)

	mv.DeltaX, mv.DeltaY = 0, 0
	mv.VelX, mv.VelY = 0, 0

	if len(mv.Waypoints) < 2 {
		return
	}

	if mv.WaitLeft > 0 {
		mv.WaitLeft -= dt
		if mv.WaitLeft >= 0 {
			return
		}
		// Leftover time after the wait expires is spent travelling
		dt = -mv.WaitLeft
		mv.WaitLeft = 0
	}

	target := mv.Waypoints[mv.Target]
	dx := target.X - obj.X
	dy := target.Y - obj.Y
	dist := math.Hypot(dx, dy)
	travel := mv.Speed * dt

	if travel >= dist {
		// Snap exactly onto the waypoint: displacement is target minus
		// the previous position, never an overshoot.
		mv.DeltaX, mv.DeltaY = dx, dy
		obj.X, obj.Y = target.X, target.Y
		mv.WaitLeft = mv.WaitTime
		advanceWaypoint(mv)
		Tracef("mover: reached waypoint, next target %d", mv.Target)
	} else {
		mv.DeltaX = dx / dist * travel
		mv.DeltaY = dy / dist * travel
		obj.X += mv.DeltaX
		obj.Y += mv.DeltaY
	}

	if dt > 0 {
		mv.VelX = mv.DeltaX / dt
		mv.VelY = mv.DeltaY / dt
	}
	obj.Update()
}

// advanceWaypoint picks the next target after an arrival. Loop wraps from
// the last waypoint back to the first; ping-pong reverses at the ends.
func advanceWaypoint(mv *components.MoverData) {
	last := len(mv.Waypoints) - 1

	if mv.Loop {
		mv.Target = (mv.Target + 1) % len(mv.Waypoints)
		return
	}

	if mv.Forward {
		if mv.Target == last {
			mv.Forward = false
			mv.Target--
		} else {
			mv.Target++
		}
	} else {
		if mv.Target == 0 {
			mv.Forward = true
			mv.Target++
		} else {
			mv.Target--
		}
	}
}
