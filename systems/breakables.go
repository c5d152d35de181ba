package systems

import (
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBreakables runs crumble and respawn timers. A broken block leaves
// the collision space entirely and returns solid when its respawn timer
// expires, whether or not a body occupies the spot.
func UpdateBreakables(e *ecs.ECS, dt float64) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for entry := range components.Breakable.Iter(e.World) {
		br := components.Breakable.Get(entry)
		obj := components.Object.Get(entry)

		if br.Broken {
			br.Respawn -= dt
			if br.Respawn <= 0 {
				br.Broken = false
				br.Respawn = 0
				br.Crumble = 0
				space.Add(obj.Object)
				Tracef("breakable: respawn")
			}
			continue
		}

		if br.StoodOn {
			br.Crumble += dt
			if br.Crumble >= cfg.Block.CrumbleTime {
				br.Broken = true
				br.Respawn = cfg.Block.RespawnTime
				space.Remove(obj.Object)
				Tracef("breakable: break")
			}
		} else {
			br.Crumble = 0
		}
		br.StoodOn = false
	}
}
