package systems

import (
	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/mathutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies runs rider attachment, input, jumping, gravity and
// integration for both players, in index order.
func UpdateBodies(e *ecs.ECS, dt float64) {
	for _, entry := range sortedPlayers(e) {
		stepBody(e, entry, dt)
	}
}

func stepBody(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	body := components.Body.Get(entry)
	obj := components.Object.Get(entry)
	in := components.Control.Get(entry)
	player := components.Player.Get(entry)

	attachRider(e, body, obj)

	// Jump gating counters tick once per physics step
	if body.Grounded {
		in.CoyoteFrames = cfg.Timing.CoyoteFrames
		if in.RepeatDelay > 0 {
			in.RepeatDelay--
		}
	} else if in.CoyoteFrames > 0 {
		in.CoyoteFrames--
	}
	if in.BufferFrames > 0 {
		in.BufferFrames--
	}

	// Horizontal control: instant start; stop is instant on normal ground
	// and a glide on low-friction surfaces.
	switch {
	case in.Left && !in.Right:
		body.SpeedX = -cfg.Player.MoveSpeed
		player.Facing = cfg.DirectionLeft
	case in.Right && !in.Left:
		body.SpeedX = cfg.Player.MoveSpeed
		player.Facing = cfg.DirectionRight
	default:
		if body.Friction >= 1 {
			body.SpeedX = 0
		} else {
			body.SpeedX = mathutil.Approach(body.SpeedX, 0, cfg.Physics.StopDeceleration*body.Friction*dt)
		}
	}

	if wantsJump(in, body) {
		consumeJump(in, body, player.PlayerIndex)
	}

	// Platform momentum decays while airborne, dies on the ground
	if body.Grounded {
		body.MomentumX = 0
	} else if body.MomentumX != 0 {
		body.MomentumX *= cfg.Player.MomentumDecay
		if mathutil.Abs(body.MomentumX) < cfg.Player.MomentumFloor {
			body.MomentumX = 0
		}
	}

	if !body.Grounded {
		body.SpeedY += cfg.Physics.Gravity * dt
		if body.SpeedY > cfg.Physics.MaxFallSpeed {
			body.SpeedY = cfg.Physics.MaxFallSpeed
		}
	}

	obj.X += (body.SpeedX + body.MomentumX) * dt
	obj.Y += body.SpeedY * dt

	lv := currentLevel(e)

	// The level edges are hard walls even where no tile sits there
	if lv != nil {
		if limit := float64(lv.Width) - obj.W; obj.X < 0 || obj.X > limit {
			obj.X = mathutil.Clamp(obj.X, 0, limit)
			body.SpeedX = 0
			body.MomentumX = 0
		}
	}
	obj.Update()

	// Safety net: fell out of the level
	if lv != nil && obj.Y > float64(lv.Height)+cfg.Physics.SafetyNetMargin {
		Tracef("body %d: safety net", player.PlayerIndex)
		RespawnBody(e, entry)
	}
}

// attachRider snaps a body onto a moving platform it is standing on and
// applies the platform's displacement for this step before integration.
func attachRider(e *ecs.ECS, body *components.BodyData, obj *components.ObjectData) {
	body.OnMover = nil
	if body.SpeedY < 0 {
		return
	}

	for mvEntry := range components.Mover.Iter(e.World) {
		mv := components.Mover.Get(mvEntry)
		mobj := components.Object.Get(mvEntry)

		if obj.X+obj.W <= mobj.X || obj.X >= mobj.X+mobj.W {
			continue
		}
		feet := obj.Y + obj.H
		if mathutil.Abs(feet-mobj.Y) > cfg.Physics.ContactTolerance {
			continue
		}

		obj.X += mv.DeltaX
		obj.Y = mobj.Y - obj.H
		obj.Update()
		body.Grounded = true
		body.SpeedY = 0
		body.OnMover = mobj.Object
		return
	}
}

// wantsJump reports whether an armed jump is legal this step: a buffered
// press while grounded or in coyote time, or holding jump on the ground
// after the repeat delay.
func wantsJump(in *components.ControlData, body *components.BodyData) bool {
	if in.BufferFrames > 0 && (body.Grounded || in.CoyoteFrames > 0) {
		return true
	}
	if in.JumpHeld && body.Grounded && in.RepeatDelay == 0 {
		return true
	}
	return false
}

// consumeJump fires the jump exactly once: the buffer and coyote windows
// are spent and cannot trigger again.
func consumeJump(in *components.ControlData, body *components.BodyData, playerIndex int) {
	body.SpeedY = -cfg.Player.JumpVelocity

	// Riding platform velocity becomes launch momentum
	if body.OnMover != nil {
		if mvEntry, ok := body.OnMover.Data.(*donburi.Entry); ok && mvEntry.HasComponent(components.Mover) {
			body.MomentumX = components.Mover.Get(mvEntry).VelX
		}
	}

	body.Grounded = false
	body.OnMover = nil
	in.BufferFrames = 0
	in.CoyoteFrames = 0
	in.RepeatDelay = cfg.Timing.JumpRepeatDelayFrames
	Tracef("body %d: jump", playerIndex)
}

// RespawnBody relocates a body to the active checkpoint (or its original
// spawn) and clears its motion. The chain drags the partner along on the
// following steps.
func RespawnBody(e *ecs.ECS, entry *donburi.Entry) {
	body := components.Body.Get(entry)
	obj := components.Object.Get(entry)
	player := components.Player.Get(entry)

	x, y := player.SpawnX, player.SpawnY
	if levelEntry, ok := components.Level.First(e.World); ok {
		if cp := components.Level.Get(levelEntry).ActiveCheckpoint; cp != nil {
			x = cp.SpawnX - obj.W/2
			y = cp.SpawnY - obj.H/2
		}
	}

	obj.X, obj.Y = x, y
	obj.Update()
	body.SpeedX, body.SpeedY = 0, 0
	body.MomentumX = 0
	body.Grounded = false
	body.OnMover = nil

	TriggerScreenShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
}
