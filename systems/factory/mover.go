package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateMover creates a moving platform whose rect starts at the first
// waypoint. Fewer than two waypoints yields a platform that never moves.
func CreateMover(ecs *ecs.ECS, w, h float64, points []math.Vec2, speed, wait float64, loop bool) *donburi.Entry {
	mover := archetypes.Mover.Spawn(ecs)

	x, y := 0.0, 0.0
	if len(points) > 0 {
		x, y = points[0].X, points[0].Y
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvMover)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = mover

	components.Object.SetValue(mover, components.ObjectData{Object: obj})
	components.Mover.SetValue(mover, components.MoverData{
		Waypoints: points,
		Target:    nextIndex(points),
		Forward:   true,
		Speed:     speed,
		WaitTime:  wait,
		Loop:      loop,
	})

	addToSpace(ecs, obj)

	return mover
}

func nextIndex(points []math.Vec2) int {
	if len(points) < 2 {
		return 0
	}
	return 1
}
