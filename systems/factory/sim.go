package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSim(ecs *ecs.ECS) *donburi.Entry {
	sim := archetypes.Sim.Spawn(ecs)
	components.Sim.SetValue(sim, components.SimData{})
	return sim
}
