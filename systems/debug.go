package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/fonts"
	"github.com/automoto/chainbound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space, colored by tag.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawSpace {
		return
	}
	v, ok := cameraViewport(e, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if obj.X+obj.W < v.minX || obj.X > v.maxX || obj.Y+obj.H < v.minY || obj.Y > v.maxY {
			continue
		}
		x := obj.X + v.offsetX
		y := obj.Y + v.offsetY

		c := debugColor(obj)

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.DrawFilledRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.DrawFilledRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	drawDebugStats(e, screen)
}

func drawDebugStats(e *ecs.ECS, screen *ebiten.Image) {
	simEntry, ok := components.Sim.First(e.World)
	if !ok {
		return
	}
	sim := components.Sim.Get(simEntry)

	line := fmt.Sprintf("step %d  acc %.4f  tps %.1f", sim.StepCount, sim.Accumulator, ebiten.ActualTPS())
	text.Draw(screen, line, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-8, cfg.Yellow)
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Blue
	case obj.HasTags(tags.ResolvSpike):
		return cfg.Red
	case obj.HasTags(tags.ResolvMover):
		return cfg.Yellow
	case obj.HasTags(tags.ResolvCheckpoint), obj.HasTags(tags.ResolvGoal):
		return cfg.Green
	default:
		return cfg.White
	}
}
