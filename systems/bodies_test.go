package systems

import (
	"testing"

	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func TestUpdateBodiesBufferedJumpFires(t *testing.T) {
	e := newTestECS()
	p := spawnGroundedPlayer(e, 100, 640)
	controlOf(p).BufferFrames = cfg.Timing.JumpBufferFrames

	UpdateBodies(e, testDt)

	if bodyOf(p).SpeedY >= 0 {
		t.Fatalf("vertical speed = %.2f, want a jump impulse", bodyOf(p).SpeedY)
	}
	if controlOf(p).BufferFrames != 0 || controlOf(p).CoyoteFrames != 0 {
		t.Fatal("consuming a jump must spend the buffer and coyote windows")
	}
	if bodyOf(p).Grounded {
		t.Fatal("a jumping body is no longer grounded")
	}
}

func TestUpdateBodiesCoyoteJump(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 100, 300, 0)
	in := controlOf(p)
	in.CoyoteFrames = 3
	in.BufferFrames = 5

	UpdateBodies(e, testDt)

	if bodyOf(p).SpeedY >= 0 {
		t.Fatalf("coyote jump did not fire, speed = %.2f", bodyOf(p).SpeedY)
	}
}

func TestUpdateBodiesNoAirborneJumpWithoutCoyote(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 100, 300, 0)
	controlOf(p).BufferFrames = 5

	UpdateBodies(e, testDt)

	// Gravity only; no jump impulse
	if bodyOf(p).SpeedY < 0 {
		t.Fatalf("airborne body without coyote jumped, speed = %.2f", bodyOf(p).SpeedY)
	}
}

func TestUpdateBodiesHeldJumpRepeatDelay(t *testing.T) {
	e := newTestECS()
	p := spawnGroundedPlayer(e, 100, 640)
	in := controlOf(p)
	in.JumpHeld = true
	in.RepeatDelay = cfg.Timing.JumpRepeatDelayFrames

	// The delay counts down one step per grounded step; the jump fires on
	// the step the counter reaches zero.
	for i := 0; i < cfg.Timing.JumpRepeatDelayFrames-1; i++ {
		UpdateBodies(e, testDt)
		if bodyOf(p).SpeedY < 0 {
			t.Fatalf("held jump fired on step %d, before the repeat delay expired", i+1)
		}
		// Keep the body settled between the pure-integration steps
		bodyOf(p).Grounded = true
		bodyOf(p).SpeedY = 0
	}

	UpdateBodies(e, testDt)
	if bodyOf(p).SpeedY >= 0 {
		t.Fatal("held jump should fire once the repeat delay reaches zero")
	}
}

func TestUpdateBodiesGravityClampsFallSpeed(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 100, -5000, 0)

	for i := 0; i < 120; i++ {
		UpdateBodies(e, testDt)
	}

	if got := bodyOf(p).SpeedY; got > cfg.Physics.MaxFallSpeed {
		t.Fatalf("fall speed = %.2f, want <= %.2f", got, cfg.Physics.MaxFallSpeed)
	}
}

func TestUpdateBodiesMomentumDecaysInAir(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 100, 300, 0)
	bodyOf(p).MomentumX = 100

	UpdateBodies(e, testDt)

	want := 100 * cfg.Player.MomentumDecay
	if !almostEqual(bodyOf(p).MomentumX, want, 1e-9) {
		t.Fatalf("momentum = %.4f, want %.4f", bodyOf(p).MomentumX, want)
	}
}

func TestUpdateBodiesMomentumFloorsToZero(t *testing.T) {
	e := newTestECS()
	p := factory.CreatePlayer(e, 100, 300, 0)
	bodyOf(p).MomentumX = cfg.Player.MomentumFloor

	UpdateBodies(e, testDt)

	if bodyOf(p).MomentumX != 0 {
		t.Fatalf("momentum = %.4f, want 0 below the floor", bodyOf(p).MomentumX)
	}
}

func TestUpdateBodiesMomentumDiesOnGround(t *testing.T) {
	e := newTestECS()
	p := spawnGroundedPlayer(e, 100, 640)
	bodyOf(p).MomentumX = 100

	UpdateBodies(e, testDt)

	if bodyOf(p).MomentumX != 0 {
		t.Fatalf("grounded momentum = %.4f, want 0", bodyOf(p).MomentumX)
	}
}

func TestUpdateBodiesIceGlide(t *testing.T) {
	e := newTestECS()
	p := spawnGroundedPlayer(e, 100, 640)
	body := bodyOf(p)
	body.Friction = cfg.Physics.IceFriction
	body.SpeedX = cfg.Player.MoveSpeed

	UpdateBodies(e, testDt)

	want := cfg.Player.MoveSpeed - cfg.Physics.StopDeceleration*cfg.Physics.IceFriction*testDt
	if !almostEqual(body.SpeedX, want, 1e-9) {
		t.Fatalf("ice glide speed = %.4f, want %.4f", body.SpeedX, want)
	}
}

func TestUpdateBodiesNormalGroundStopsInstantly(t *testing.T) {
	e := newTestECS()
	p := spawnGroundedPlayer(e, 100, 640)
	bodyOf(p).SpeedX = cfg.Player.MoveSpeed

	UpdateBodies(e, testDt)

	if bodyOf(p).SpeedX != 0 {
		t.Fatalf("speed after releasing input = %.4f, want 0", bodyOf(p).SpeedX)
	}
}

func TestUpdateBodiesClampsToLeftWorldEdge(t *testing.T) {
	e := newTestECS()
	addTestLevel(e)
	p := spawnGroundedPlayer(e, 5, 640)
	controlOf(p).Left = true

	for i := 0; i < 30; i++ {
		UpdateBodies(e, testDt)
	}

	if got := objOf(p).X; got != 0 {
		t.Fatalf("player X = %.2f, want clamped at the left edge", got)
	}
	if bodyOf(p).SpeedX != 0 {
		t.Fatalf("speed after clamping = %.2f, want 0", bodyOf(p).SpeedX)
	}
}

func TestUpdateBodiesClampsToRightWorldEdge(t *testing.T) {
	e := newTestECS()
	level := addTestLevel(e)
	limit := float64(level.CurrentLevel.Width) - cfg.Player.Width
	p := spawnGroundedPlayer(e, limit-5, 640)
	controlOf(p).Right = true
	bodyOf(p).MomentumX = 50

	for i := 0; i < 30; i++ {
		UpdateBodies(e, testDt)
	}

	if got := objOf(p).X; got != limit {
		t.Fatalf("player X = %.2f, want clamped at %.2f", got, limit)
	}
	if bodyOf(p).SpeedX != 0 || bodyOf(p).MomentumX != 0 {
		t.Fatal("clamping must zero horizontal speed and momentum")
	}
}

func TestUpdateBodiesSafetyNetRespawns(t *testing.T) {
	e := newTestECS()
	level := addTestLevel(e)
	p := factory.CreatePlayer(e, 100, 200, 0)
	obj := objOf(p)
	obj.Y = float64(level.CurrentLevel.Height) + cfg.Physics.SafetyNetMargin + 10
	obj.Update()

	UpdateBodies(e, testDt)

	if obj.Y > 300 {
		t.Fatalf("player Y = %.2f, expected respawn near spawn", obj.Y)
	}
	if bodyOf(p).SpeedY != 0 {
		t.Fatal("respawn must clear vertical speed")
	}
}

func TestRiderCarriedByMover(t *testing.T) {
	e := newTestECS()
	factory.CreateMover(e, 96, 16,
		[]math.Vec2{{X: 100, Y: 500}, {X: 200, Y: 500}}, 60, 0, false)
	p := factory.CreatePlayer(e, 120, 500-cfg.Player.Height, 0)
	startX := objOf(p).X

	UpdateMovers(e, testDt)
	UpdateBodies(e, testDt)

	carried := objOf(p).X - startX
	want := 60 * testDt
	if !almostEqual(carried, want, 1e-6) {
		t.Fatalf("rider carried %.4f px, want %.4f", carried, want)
	}
	if !bodyOf(p).Grounded {
		t.Fatal("rider should be grounded on the platform")
	}
}

func TestRiderJumpInheritsPlatformMomentum(t *testing.T) {
	e := newTestECS()
	factory.CreateMover(e, 96, 16,
		[]math.Vec2{{X: 100, Y: 500}, {X: 200, Y: 500}}, 60, 0, false)
	p := factory.CreatePlayer(e, 120, 500-cfg.Player.Height, 0)
	controlOf(p).BufferFrames = 5

	UpdateMovers(e, testDt)
	UpdateBodies(e, testDt)

	if bodyOf(p).SpeedY >= 0 {
		t.Fatal("buffered jump on a platform did not fire")
	}
	if !almostEqual(bodyOf(p).MomentumX, 60, 1e-6) {
		t.Fatalf("launch momentum = %.4f, want 60", bodyOf(p).MomentumX)
	}
}
