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

// CreateCheckpoint creates a checkpoint trigger zone with a glow pulse.
func CreateCheckpoint(ecs *ecs.ECS, x, y, w, h, checkpointID float64) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	// Respawn position at the center of the checkpoint zone
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: checkpointID,
		SpawnX:       x + w/2,
		SpawnY:       y + h/2,
	})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0.45, 1, 0.75, ease.InOutQuad),
		gween.New(1, 0.45, 0.75, ease.InOutQuad),
	)
	components.Tween.Set(checkpoint, tw)
	components.Glow.SetValue(checkpoint, components.GlowData{Alpha: 0.45})

	addToSpace(ecs, obj)

	return checkpoint
}
