package archetypes

import (
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Control,
	)
	Chain = newArchetype(
		tags.ChainLink,
		components.Chain,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Solid,
		components.Object,
	)
	Breakable = newArchetype(
		tags.Solid,
		components.Solid,
		components.Breakable,
		components.Object,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Solid,
		components.Object,
	)
	Mover = newArchetype(
		tags.Mover,
		components.Mover,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
		components.Tween,
		components.Glow,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
		components.Tween,
		components.Glow,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Sim = newArchetype(
		components.Sim,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
