package systems

import (
	"github.com/automoto/chainbound/assets"
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDt = 1.0 / 60.0

// newTestECS builds a world with a space, camera and sim but no level
// geometry. Tests add what they need through the factory.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2048, 1024, 16, 16)
	factory.CreateCamera(e)
	factory.CreateSim(e)
	return e
}

// addTestLevel registers a bare level entity so respawn and safety net
// logic have dimensions to work with.
func addTestLevel(e *ecs.ECS) *components.LevelData {
	entry := e.World.Entry(e.World.Create(components.Level))
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: &assets.Level{Name: "test", Width: 2048, Height: 1024},
	})
	return components.Level.Get(entry)
}

// spawnPair creates both chained players at the given top-left positions.
func spawnPair(e *ecs.ECS, x0, y0, x1, y1 float64) (*donburi.Entry, *donburi.Entry) {
	a := factory.CreatePlayer(e, x0, y0, 0)
	b := factory.CreatePlayer(e, x1, y1, 1)
	factory.CreateChain(e)
	return a, b
}

// spawnGroundedPlayer creates one player whose feet rest exactly on top of
// a floor slab at floorY.
func spawnGroundedPlayer(e *ecs.ECS, x, floorY float64) *donburi.Entry {
	factory.CreateSolid(e, x-200, floorY, 400, 32, "block", true)
	p := factory.CreatePlayer(e, x, floorY-cfg.Player.Height, 0)
	components.Body.Get(p).Grounded = true
	return p
}

func bodyOf(entry *donburi.Entry) *components.BodyData {
	return components.Body.Get(entry)
}

func objOf(entry *donburi.Entry) *components.ObjectData {
	return components.Object.Get(entry)
}

func controlOf(entry *donburi.Entry) *components.ControlData {
	return components.Control.Get(entry)
}

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
