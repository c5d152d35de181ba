package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns one of the two chained bodies. x,y is the top-left
// of the collision box.
func CreatePlayer(ecs *ecs.ECS, x, y float64, playerIndex int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		PlayerIndex: playerIndex,
		Facing:      cfg.DirectionRight,
		SpawnX:      x,
		SpawnY:      y,
	})
	components.Body.SetValue(player, components.BodyData{Friction: 1.0})
	components.Control.SetValue(player, components.ControlData{PlayerIndex: playerIndex})

	addToSpace(ecs, obj)

	return player
}
