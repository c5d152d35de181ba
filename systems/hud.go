package systems

import (
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the level name and, once the goal is reached, the
// victory overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.CurrentLevel != nil {
		text.Draw(screen, level.CurrentLevel.Name, fonts.UI.Get(), hudMargin, hudMargin+14, cfg.White)
	}

	if level.Completed {
		drawVictoryOverlay(screen)
	}
}

func drawVictoryOverlay(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Victory.OverlayColor, false)

	titleFont := fonts.Title.Get()
	titleWidth := len(cfg.Victory.Title) * 20 // Approximate width for 36pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, cfg.Victory.Title, titleFont, titleX, int(cfg.Victory.TitleY), cfg.Victory.TitleColor)

	hintFont := fonts.UI.Get()
	hintWidth := len(cfg.Victory.ContinueHint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, cfg.Victory.ContinueHint, hintFont, hintX, int(cfg.Victory.HintY), cfg.Victory.TextColor)
}
