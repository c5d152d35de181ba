package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// PlayerBindings maps actions to keys for one player's keyboard zone
type PlayerBindings map[ActionID][]ebiten.Key

// InputConfig holds both players' keyboard zones plus shared menu keys
type InputConfig struct {
	Players [2]PlayerBindings
	Menu    PlayerBindings
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Players: [2]PlayerBindings{
			// Player 1: WASD zone
			{
				ActionMoveLeft:  {ebiten.KeyA},
				ActionMoveRight: {ebiten.KeyD},
				ActionJump:      {ebiten.KeyW, ebiten.KeySpace},
			},
			// Player 2: arrow zone
			{
				ActionMoveLeft:  {ebiten.KeyLeft},
				ActionMoveRight: {ebiten.KeyRight},
				ActionJump:      {ebiten.KeyUp},
			},
		},
		Menu: PlayerBindings{
			ActionMenuUp:     {ebiten.KeyUp, ebiten.KeyW},
			ActionMenuDown:   {ebiten.KeyDown, ebiten.KeyS},
			ActionMenuSelect: {ebiten.KeyEnter},
			ActionMenuBack:   {ebiten.KeyEscape},
		},
	}
}
