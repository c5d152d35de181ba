package systems

import (
	"github.com/automoto/chainbound/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances glow tween sequences and writes their current
// value into the glow components the renderer reads.
func UpdateEffects(e *ecs.ECS) {
	for entry := range components.Tween.Iter(e.World) {
		seq := components.Tween.Get(entry)
		value, _, seqDone := seq.Update(1.0 / 60.0)
		if seqDone {
			seq.Reset()
		}
		if entry.HasComponent(components.Glow) {
			components.Glow.Get(entry).Alpha = float64(value)
		}
	}
}
