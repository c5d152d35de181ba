package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal creates the level exit zone. The level completes when both
// players stand inside it.
func CreateGoal(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0.6, 1, 1.2, ease.InOutSine),
		gween.New(1, 0.6, 1.2, ease.InOutSine),
	)
	components.Tween.Set(goal, tw)
	components.Glow.SetValue(goal, components.GlowData{Alpha: 0.6})

	addToSpace(ecs, obj)

	return goal
}
