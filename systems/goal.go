package systems

import (
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoal completes the level once both players stand in the goal zone
// at the same time. One player alone is not enough; the chain partner has
// to make it too.
func UpdateGoal(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Completed {
		return
	}

	players := sortedPlayers(e)
	if len(players) < 2 {
		return
	}

	for _, entry := range players {
		obj := components.Object.Get(entry)
		if obj.Check(0, 0, tags.ResolvGoal) == nil {
			return
		}
	}

	level.Completed = true
	Tracef("goal: level %d complete", level.LevelIndex)
}
