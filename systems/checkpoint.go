package systems

import (
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints activates a checkpoint when either player touches it.
// Activation is permanent for the session and the respawn point moves
// forward only.
func UpdateCheckpoints(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, playerEntry := range sortedPlayers(e) {
		obj := components.Object.Get(playerEntry)

		check := obj.Check(0, 0, tags.ResolvCheckpoint)
		if check == nil {
			continue
		}

		for _, cpObj := range check.ObjectsByTags(tags.ResolvCheckpoint) {
			cpEntry, ok := cpObj.Data.(*donburi.Entry)
			if !ok || !cpEntry.HasComponent(components.Checkpoint) {
				continue
			}
			cp := components.Checkpoint.Get(cpEntry)
			if cp.Activated {
				continue
			}

			cp.Activated = true
			level.ActiveCheckpoint = &components.ActiveCheckpointData{
				SpawnX:       cp.SpawnX,
				SpawnY:       cp.SpawnY,
				CheckpointID: cp.CheckpointID,
			}
			Tracef("checkpoint %v: activated", cp.CheckpointID)
			_ = SaveProgress(level.LevelIndex, level.ActiveCheckpoint)
		}
	}
}
