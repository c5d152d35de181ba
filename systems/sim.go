package systems

import (
	"time"

	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation accumulates real frame time and runs whole fixed physics
// steps, at most MaxStepsPerFrame per rendered frame. Backlog beyond the
// cap is dropped so a long stall cannot trigger a catch-up spiral.
func UpdateSimulation(e *ecs.ECS) {
	simEntry, ok := components.Sim.First(e.World)
	if !ok {
		return
	}
	sim := components.Sim.Get(simEntry)

	// Freeze the world once the goal is reached
	if levelEntry, ok := components.Level.First(e.World); ok {
		if components.Level.Get(levelEntry).Completed {
			sim.Started = false
			return
		}
	}

	now := time.Now()
	if !sim.Started {
		sim.Started = true
		sim.LastTick = now
		return
	}
	delta := now.Sub(sim.LastTick).Seconds()
	sim.LastTick = now
	if delta > cfg.Physics.MaxFrameDelta {
		delta = cfg.Physics.MaxFrameDelta
	}
	sim.Accumulator += delta

	steps := 0
	for sim.Accumulator >= cfg.Physics.TimeStep && steps < cfg.Physics.MaxStepsPerFrame {
		Step(e, cfg.Physics.TimeStep)
		sim.Accumulator -= cfg.Physics.TimeStep
		sim.StepCount++
		steps++
	}
	if steps == cfg.Physics.MaxStepsPerFrame && sim.Accumulator >= cfg.Physics.TimeStep {
		Tracef("sim: dropping %.4fs backlog", sim.Accumulator)
		sim.Accumulator = 0
	}
}

// Step runs one fixed physics step. The stage order is the contract the
// rest of the game is built around: platforms move first so riders can
// consume their displacement, the chain solves on predicted positions, and
// collision resolution has the final say.
func Step(e *ecs.ECS, dt float64) {
	UpdateMovers(e, dt)
	UpdateBodies(e, dt)
	SolveChain(e)
	ResolveCollisions(e, dt)
	UpdateBreakables(e, dt)
}
