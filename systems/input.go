package systems

import (
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard once per rendered frame and latches the
// results into each player's control state. A just-pressed jump arms the
// buffer; the physics steps consume it.
func UpdateInput(e *ecs.ECS) {
	for entry := range components.Control.Iter(e.World) {
		in := components.Control.Get(entry)
		bindings := cfg.Input.Players[in.PlayerIndex]

		in.Left = anyKeyPressed(bindings[cfg.ActionMoveLeft])
		in.Right = anyKeyPressed(bindings[cfg.ActionMoveRight])
		in.JumpHeld = anyKeyPressed(bindings[cfg.ActionJump])
		in.JumpJustPressed = anyKeyJustPressed(bindings[cfg.ActionJump])

		if in.JumpJustPressed {
			in.BufferFrames = cfg.Timing.JumpBufferFrames
		}
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
