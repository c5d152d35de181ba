package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRamp creates a diagonal surface. The object bounds are the full
// rect; the sloped surface height is computed in the collision code.
func CreateRamp(ecs *ecs.ECS, x, y, w, h float64, facingRight bool) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(ecs)

	facing := tags.RampUpRight
	kind := components.KindRampRight
	if !facingRight {
		facing = tags.RampUpLeft
		kind = components.KindRampLeft
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvRamp, facing)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ramp

	components.Object.SetValue(ramp, components.ObjectData{Object: obj})
	components.Solid.SetValue(ramp, components.SolidData{Kind: kind})

	addToSpace(ecs, obj)

	return ramp
}
