package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChain creates the singleton constraint entity joining the players.
func CreateChain(ecs *ecs.ECS) *donburi.Entry {
	chain := archetypes.Chain.Spawn(ecs)
	components.Chain.SetValue(chain, components.ChainData{
		MaxLength:  cfg.Chain.MaxLength,
		Iterations: cfg.Chain.Iterations,
	})
	return chain
}
