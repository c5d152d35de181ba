package systems

import (
	"math"

	"github.com/automoto/chainbound/components"
	"github.com/yohamta/donburi/ecs"
)

// SolveChain enforces the maximum distance between the two body centers.
// Corrections are purely positional; velocities are untouched, so the
// constraint acts like a rigid yank rather than a spring.
func SolveChain(e *ecs.ECS) {
	chainEntry, ok := components.Chain.First(e.World)
	if !ok {
		return
	}
	chain := components.Chain.Get(chainEntry)

	a, b, ok := playerPair(e)
	if !ok {
		return
	}
	objA := components.Object.Get(a)
	objB := components.Object.Get(b)
	bodyA := components.Body.Get(a)
	bodyB := components.Body.Get(b)

	for i := 0; i < chain.Iterations; i++ {
		dx := (objB.X + objB.W/2) - (objA.X + objA.W/2)
		dy := (objB.Y + objB.H/2) - (objA.Y + objA.H/2)
		dist := math.Hypot(dx, dy)
		chain.Length = dist

		if dist <= chain.MaxLength {
			break
		}
		if dist == 0 {
			// Degenerate: coincident centers give no direction to correct
			break
		}

		excess := dist - chain.MaxLength
		ux, uy := dx/dist, dy/dist
		wa, wb := constraintWeights(bodyA.Grounded, bodyB.Grounded)

		if wa > 0 {
			objA.X += ux * excess * wa
			objA.Y += uy * excess * wa
			objA.Update()
		}
		if wb > 0 {
			objB.X -= ux * excess * wb
			objB.Y -= uy * excess * wb
			objB.Update()
		}
		Tracef("chain: iter %d excess %.2f", i, excess)
	}

	// Record the post-solve length for rendering tautness
	dx := (objB.X + objB.W/2) - (objA.X + objA.W/2)
	dy := (objB.Y + objB.H/2) - (objA.Y + objA.H/2)
	chain.Length = math.Hypot(dx, dy)
}

// constraintWeights splits the correction between the bodies. A grounded
// body anchors the pair: the airborne partner takes the whole correction.
func constraintWeights(groundedA, groundedB bool) (float64, float64) {
	switch {
	case groundedA && !groundedB:
		return 0, 1
	case groundedB && !groundedA:
		return 1, 0
	default:
		return 0.5, 0.5
	}
}
