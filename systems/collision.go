package systems

import (
	"math"
	"sort"

	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/mathutil"
	"github.com/automoto/chainbound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveCollisions is the last word on body positions each step. It runs
// after the chain solver, so whatever the constraint predicted is clipped
// against the world here.
func ResolveCollisions(e *ecs.ECS, dt float64) {
	for _, entry := range sortedPlayers(e) {
		resolveBody(e, entry, dt)
	}
}

func resolveBody(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	body := components.Body.Get(entry)
	obj := components.Object.Get(entry)

	// Contact state is re-derived from this pass alone. Rider attachment
	// re-asserts it next step for platform riders.
	body.Grounded = false
	body.Friction = 1.0

	check := obj.Check(0, 0)
	if check != nil {
		// Nearest-first for a deterministic sequential resolve
		objects := append([]*resolv.Object{}, check.Objects...)
		sort.SliceStable(objects, func(i, j int) bool {
			return centerDistSq(obj.Object, objects[i]) < centerDistSq(obj.Object, objects[j])
		})

		for _, s := range objects {
			switch {
			case s.HasTags(tags.ResolvSpike):
				if overlaps(obj.Object, s) {
					Tracef("collide: hazard hit")
					RespawnBody(e, entry)
					return
				}
			case s.HasTags(tags.ResolvRamp):
				resolveRamp(obj, body, s)
			case s.HasTags(tags.ResolvOneWay):
				resolveOneWay(obj, body, s, dt)
			case s.HasTags(tags.ResolvSolid), s.HasTags(tags.ResolvMover):
				resolveSolid(obj, body, s)
			}
		}
	}

	if !body.Grounded {
		groundProbe(obj, body)
	}
}

// resolveSolid pushes the body out of a full solid along the axis of
// minimum penetration. Vertical wins ties so landings beat wall snags.
func resolveSolid(obj *components.ObjectData, body *components.BodyData, s *resolv.Object) {
	// Broken breakables are removed from the space, but guard anyway
	if br := breakableOf(s); br != nil && br.Broken {
		return
	}

	overLeft := obj.X + obj.W - s.X
	overRight := s.X + s.W - obj.X
	overTop := obj.Y + obj.H - s.Y
	overBottom := s.Y + s.H - obj.Y
	if overLeft <= 0 || overRight <= 0 || overTop <= 0 || overBottom <= 0 {
		return
	}

	minH := math.Min(overLeft, overRight)
	minV := math.Min(overTop, overBottom)
	if math.Min(minH, minV) < cfg.Physics.JitterThreshold {
		// Sub-pixel scrape; correcting it would only jitter
		return
	}

	ice := s.HasTags(tags.ResolvIce)
	bouncy := s.HasTags(tags.ResolvBouncy)

	if minV <= minH {
		if overTop <= overBottom {
			// Feet through the top: a landing, only while falling
			if body.SpeedY < 0 {
				return
			}
			obj.Y = s.Y - obj.H
			if bouncy {
				body.SpeedY = -cfg.Block.BounceVelocity
				Tracef("collide: bounce")
			} else {
				body.SpeedY = 0
				body.Grounded = true
				applySurface(body, s)
			}
		} else {
			// Head through the bottom: a ceiling, only while rising
			if body.SpeedY > 0 {
				return
			}
			obj.Y = s.Y + s.H
			body.SpeedY = 0
		}
	} else {
		// The chain can push a body sideways into a wall with no velocity
		// of its own, so the positional correction is unconditional; only
		// the velocity zeroing is gated on direction.
		moving := body.SpeedX + body.MomentumX
		if overLeft <= overRight {
			obj.X = s.X - obj.W
			if !ice && moving > 0 {
				body.SpeedX = 0
				body.MomentumX = 0
			}
		} else {
			obj.X = s.X + s.W
			if !ice && moving < 0 {
				body.SpeedX = 0
				body.MomentumX = 0
			}
		}
	}
	obj.Update()
}

// resolveOneWay lands the body on a pass-through platform: only from
// above, only while falling.
func resolveOneWay(obj *components.ObjectData, body *components.BodyData, s *resolv.Object, dt float64) {
	if body.SpeedY < 0 {
		return
	}
	if obj.X+obj.W <= s.X || obj.X >= s.X+s.W {
		return
	}
	overTop := obj.Y + obj.H - s.Y
	if overTop < cfg.Physics.JitterThreshold {
		return
	}
	// The feet must have started at or above the top this step; anything
	// deeper came from below or the side and passes through.
	if overTop > body.SpeedY*dt+cfg.Physics.JitterThreshold {
		return
	}

	obj.Y = s.Y - obj.H
	body.SpeedY = 0
	body.Grounded = true
	obj.Update()
}

// resolveRamp snaps falling feet onto the diagonal surface and treats the
// tall edge as a vertical wall.
func resolveRamp(obj *components.ObjectData, body *components.BodyData, s *resolv.Object) {
	if !overlaps(obj.Object, s) {
		return
	}

	facingRight := s.HasTags(tags.RampUpRight)
	centerX := obj.X + obj.W/2
	feet := obj.Y + obj.H

	// Tall edge wall
	band := cfg.Physics.ContactTolerance
	if facingRight {
		wallX := s.X + s.W
		if obj.X < wallX && obj.X >= wallX-band && obj.Y+obj.H > s.Y && obj.Y < s.Y+s.H {
			obj.X = wallX
			if body.SpeedX < 0 {
				body.SpeedX = 0
			}
			obj.Update()
			return
		}
	} else {
		wallX := s.X
		if obj.X+obj.W > wallX && obj.X+obj.W <= wallX+band && obj.Y+obj.H > s.Y && obj.Y < s.Y+s.H {
			obj.X = wallX - obj.W
			if body.SpeedX > 0 {
				body.SpeedX = 0
			}
			obj.Update()
			return
		}
	}

	surf := rampSurfaceY(s, facingRight, centerX)

	// Snap onto the surface when the feet are near it and not rising away
	if centerX >= s.X && centerX <= s.X+s.W {
		if feet >= surf-cfg.Physics.ContactTolerance && feet <= surf+cfg.Physics.RampSnapDepth {
			obj.Y = surf - obj.H
			if body.SpeedY > 0 {
				body.SpeedY = 0
			}
			body.Grounded = true
			obj.Update()
			return
		}
	}

	// Block a body rising into the underside of the surface
	if obj.Y < surf && obj.Y+obj.H > surf && body.SpeedY < 0 {
		obj.Y = surf
		body.SpeedY = 0
		obj.Update()
	}
}

// rampSurfaceY returns the surface height at x. Right-facing ramps rise
// toward +x.
func rampSurfaceY(s *resolv.Object, facingRight bool, x float64) float64 {
	progress := mathutil.Clamp((x-s.X)/s.W, 0, 1)
	if facingRight {
		return s.Y + s.H - progress*s.H
	}
	return s.Y + progress*s.H
}

// groundProbe re-asserts Grounded when the feet rest within GroundProbe
// of a surface top without penetrating it. Flush contact produces zero
// overlap, so landings alone cannot keep a standing body grounded.
func groundProbe(obj *components.ObjectData, body *components.BodyData) {
	if body.SpeedY < 0 {
		return
	}
	check := obj.Check(0, cfg.Physics.GroundProbe+1)
	if check == nil {
		return
	}

	feet := obj.Y + obj.H
	for _, s := range check.Objects {
		// A ramp's walkable surface sits inside its rect, so its gap is
		// measured against the slope, not the rect top.
		if s.HasTags(tags.ResolvRamp) {
			centerX := obj.X + obj.W/2
			if centerX < s.X || centerX > s.X+s.W {
				continue
			}
			surf := rampSurfaceY(s, s.HasTags(tags.RampUpRight), centerX)
			if gap := surf - feet; gap >= 0 && gap <= cfg.Physics.GroundProbe {
				body.Grounded = true
				return
			}
			continue
		}
		if !s.HasTags(tags.ResolvSolid) && !s.HasTags(tags.ResolvOneWay) && !s.HasTags(tags.ResolvMover) {
			continue
		}
		if obj.X+obj.W <= s.X || obj.X >= s.X+s.W {
			continue
		}
		if br := breakableOf(s); br != nil && br.Broken {
			continue
		}
		gap := s.Y - feet
		if gap < 0 || gap > cfg.Physics.GroundProbe {
			continue
		}
		body.Grounded = true
		applySurface(body, s)
		return
	}
}

// applySurface applies standing side effects of the surface under foot.
func applySurface(body *components.BodyData, s *resolv.Object) {
	if s.HasTags(tags.ResolvIce) {
		body.Friction = cfg.Physics.IceFriction
	}
	if br := breakableOf(s); br != nil {
		br.StoodOn = true
	}
}

func breakableOf(s *resolv.Object) *components.BreakableData {
	entry, ok := s.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.HasComponent(components.Breakable) {
		return nil
	}
	return components.Breakable.Get(entry)
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func centerDistSq(a, b *resolv.Object) float64 {
	dx := (a.X + a.W/2) - (b.X + b.W/2)
	dy := (a.Y + a.H/2) - (b.Y + b.H/2)
	return dx*dx + dy*dy
}
