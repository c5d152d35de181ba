package systems

import (
	"testing"

	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/systems/factory"
)

func TestResolveCollisionsLandsOnFloor(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 640, 320, 32, "block", true)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height+10, 0)
	bodyOf(p).SpeedY = 100

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != 640-cfg.Player.Height {
		t.Fatalf("player Y = %.2f, want %.2f", got, 640-cfg.Player.Height)
	}
	if !bodyOf(p).Grounded {
		t.Fatal("player should be grounded after landing")
	}
	if bodyOf(p).SpeedY != 0 {
		t.Fatalf("vertical speed = %.2f, want 0", bodyOf(p).SpeedY)
	}
}

func TestResolveCollisionsCeiling(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 200, 320, 32, "block", false)
	p := factory.CreatePlayer(e, 100, 232-10, 0) // head 10px into the block
	bodyOf(p).SpeedY = -200

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != 232 {
		t.Fatalf("player Y = %.2f, want 232", got)
	}
	if bodyOf(p).SpeedY != 0 {
		t.Fatalf("vertical speed = %.2f, want 0", bodyOf(p).SpeedY)
	}
	if bodyOf(p).Grounded {
		t.Fatal("ceiling hit must not ground the player")
	}
}

func TestResolveCollisionsWallStopsMotion(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 300, 0, 32, 640, "block", false)
	p := factory.CreatePlayer(e, 300-cfg.Player.Width+6, 200, 0) // 6px into the wall
	bodyOf(p).SpeedX = 200

	ResolveCollisions(e, testDt)

	if got := objOf(p).X; got != 300-cfg.Player.Width {
		t.Fatalf("player X = %.2f, want %.2f", got, 300-cfg.Player.Width)
	}
	if bodyOf(p).SpeedX != 0 {
		t.Fatalf("horizontal speed = %.2f, want 0", bodyOf(p).SpeedX)
	}
}

func TestResolveCollisionsWallPushWithoutVelocity(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 300, 0, 32, 640, "block", false)
	// The chain can shove a body into a wall with zero speed of its own
	p := factory.CreatePlayer(e, 300-cfg.Player.Width+6, 200, 0)

	ResolveCollisions(e, testDt)

	if got := objOf(p).X; got != 300-cfg.Player.Width {
		t.Fatalf("player X = %.2f, want %.2f", got, 300-cfg.Player.Width)
	}
}

func TestResolveCollisionsIgnoresSubPixelOverlap(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 300, 0, 32, 640, "block", false)
	startX := 300 - cfg.Player.Width + 0.2
	p := factory.CreatePlayer(e, startX, 200, 0)

	ResolveCollisions(e, testDt)

	if got := objOf(p).X; got != startX {
		t.Fatalf("sub-pixel overlap moved the player: %.4f -> %.4f", startX, got)
	}
}

func TestResolveCollisionsBouncyLaunches(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 640, 320, 32, "bouncy", false)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height+8, 0)
	bodyOf(p).SpeedY = 300

	ResolveCollisions(e, testDt)

	if got := bodyOf(p).SpeedY; got != -cfg.Block.BounceVelocity {
		t.Fatalf("bounce speed = %.2f, want %.2f", got, -cfg.Block.BounceVelocity)
	}
	if bodyOf(p).Grounded {
		t.Fatal("a bounce must not ground the player")
	}
}

func TestResolveCollisionsIceSetsFriction(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 640, 320, 32, "ice", false)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height+8, 0)
	bodyOf(p).SpeedY = 100

	ResolveCollisions(e, testDt)

	if got := bodyOf(p).Friction; got != cfg.Physics.IceFriction {
		t.Fatalf("friction = %.2f, want %.2f", got, cfg.Physics.IceFriction)
	}
}

func TestResolveCollisionsIceSideContactKeepsSpeed(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 300, 0, 32, 640, "ice", false)
	p := factory.CreatePlayer(e, 300-cfg.Player.Width+6, 200, 0) // 6px into the ice wall
	bodyOf(p).SpeedX = 200

	ResolveCollisions(e, testDt)

	if got := objOf(p).X; got != 300-cfg.Player.Width {
		t.Fatalf("player X = %.2f, want %.2f", got, 300-cfg.Player.Width)
	}
	if got := bodyOf(p).SpeedX; got != 200 {
		t.Fatalf("ice side contact zeroed horizontal speed: %.2f, want 200", got)
	}
}

func TestResolveCollisionsOneWayPassThroughFromBelow(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 400, 320, 8, "oneway", false)
	startY := 400.0 - 30 // body straddles the platform while rising
	p := factory.CreatePlayer(e, 100, startY, 0)
	bodyOf(p).SpeedY = -300

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != startY {
		t.Fatalf("rising body was clipped by a one-way platform: %.2f -> %.2f", startY, got)
	}
}

func TestResolveCollisionsOneWayLandsFromAbove(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 400, 320, 8, "oneway", false)
	// Feet 2px past the top, consistent with this step's fall speed
	p := factory.CreatePlayer(e, 100, 400-cfg.Player.Height+2, 0)
	bodyOf(p).SpeedY = 300

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != 400-cfg.Player.Height {
		t.Fatalf("player Y = %.2f, want %.2f", got, 400-cfg.Player.Height)
	}
	if !bodyOf(p).Grounded {
		t.Fatal("player should be grounded on the one-way platform")
	}
}

func TestResolveCollisionsOneWayDeepOverlapPassesThrough(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 400, 320, 8, "oneway", false)
	// Feet far below the top: the body came from the side, not above
	startY := 400 - cfg.Player.Height + 30
	p := factory.CreatePlayer(e, 100, startY, 0)
	bodyOf(p).SpeedY = 100

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != startY {
		t.Fatalf("deep overlap snapped onto a one-way platform: %.2f -> %.2f", startY, got)
	}
}

func TestResolveCollisionsGroundProbeKeepsFlushContactGrounded(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 640, 320, 32, "block", true)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height, 0) // exactly flush

	ResolveCollisions(e, testDt)

	if !bodyOf(p).Grounded {
		t.Fatal("flush contact should stay grounded via the ground probe")
	}
}

func TestResolveCollisionsSpikeRespawns(t *testing.T) {
	e := newTestECS()
	addTestLevel(e)
	factory.CreateSolid(e, 0, 640, 320, 32, "spike", false)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height+8, 0)
	spawnX := objOf(p).X

	// Move away from spawn, then into the spikes
	objOf(p).X = 150
	objOf(p).Update()
	ResolveCollisions(e, testDt)

	if got := objOf(p).X; got != spawnX {
		t.Fatalf("player X after spike = %.2f, want spawn %.2f", got, spawnX)
	}
	if bodyOf(p).SpeedX != 0 || bodyOf(p).SpeedY != 0 {
		t.Fatal("respawn must clear all motion")
	}
}

func TestResolveCollisionsRampSnapsFeet(t *testing.T) {
	e := newTestECS()
	factory.CreateRamp(e, 128, 576, 128, 64, true)
	// Center at x=192, halfway up the right-facing ramp: surface y = 608
	p := factory.CreatePlayer(e, 192-cfg.Player.Width/2, 608-cfg.Player.Height+4, 0)
	bodyOf(p).SpeedY = 100

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != 608-cfg.Player.Height {
		t.Fatalf("player Y on ramp = %.2f, want %.2f", got, 608-cfg.Player.Height)
	}
	if !bodyOf(p).Grounded {
		t.Fatal("player should be grounded on the ramp surface")
	}
}

func TestResolveCollisionsRampTallEdgeBlocks(t *testing.T) {
	e := newTestECS()
	factory.CreateRamp(e, 128, 576, 128, 64, true) // tall edge at x=256
	p := factory.CreatePlayer(e, 256-2, 580, 0)    // 2px past the wall, moving left
	bodyOf(p).SpeedX = -200

	ResolveCollisions(e, testDt)

	if got := objOf(p).X; got != 256 {
		t.Fatalf("player X at ramp wall = %.2f, want 256", got)
	}
	if bodyOf(p).SpeedX != 0 {
		t.Fatalf("horizontal speed = %.2f, want 0", bodyOf(p).SpeedX)
	}
}

func TestResolveCollisionsRampBlocksFromBelow(t *testing.T) {
	e := newTestECS()
	factory.CreateRamp(e, 128, 576, 128, 64, true)
	// Center at x=192, surface y = 608; the rising head has crossed the
	// surface line while the feet are still well below the snap band
	p := factory.CreatePlayer(e, 192-cfg.Player.Width/2, 570, 0)
	bodyOf(p).SpeedY = -300

	ResolveCollisions(e, testDt)

	if got := objOf(p).Y; got != 608 {
		t.Fatalf("player Y = %.2f, want stopped at the surface underside 608", got)
	}
	if bodyOf(p).SpeedY != 0 {
		t.Fatalf("vertical speed = %.2f, want 0", bodyOf(p).SpeedY)
	}
	if bodyOf(p).Grounded {
		t.Fatal("a body blocked from below must not be grounded")
	}
}

func TestResolveCollisionsNoTunnelAtMaxFallSpeed(t *testing.T) {
	e := newTestECS()
	addTestLevel(e)
	factory.CreateSolid(e, 0, 640, 320, 32, "block", true)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height-200, 0)
	bodyOf(p).SpeedY = cfg.Physics.MaxFallSpeed

	floorBottom := 640.0 + 32
	for i := 0; i < 20; i++ {
		UpdateBodies(e, testDt)
		ResolveCollisions(e, testDt)
		if feet := objOf(p).Y + cfg.Player.Height; feet > floorBottom {
			t.Fatalf("step %d: body passed through the floor, feet at %.2f", i, feet)
		}
	}

	if got := objOf(p).Y; got != 640-cfg.Player.Height {
		t.Fatalf("player Y after full-speed drop = %.2f, want %.2f", got, 640-cfg.Player.Height)
	}
	if !bodyOf(p).Grounded {
		t.Fatal("player should settle grounded on the floor")
	}
}

func TestResolveCollisionsIdempotentWhenSettled(t *testing.T) {
	e := newTestECS()
	factory.CreateSolid(e, 0, 640, 320, 32, "block", true)
	p := factory.CreatePlayer(e, 100, 640-cfg.Player.Height+6, 0)
	bodyOf(p).SpeedY = 100

	ResolveCollisions(e, testDt)
	x, y := objOf(p).X, objOf(p).Y
	ResolveCollisions(e, testDt)

	if objOf(p).X != x || objOf(p).Y != y {
		t.Fatalf("second resolve moved a settled body: (%.2f, %.2f) -> (%.2f, %.2f)",
			x, y, objOf(p).X, objOf(p).Y)
	}
}
