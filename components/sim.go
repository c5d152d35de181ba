package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SimData is the fixed-timestep accumulator state.
type SimData struct {
	Accumulator float64
	LastTick    time.Time
	Started     bool
	StepCount   uint64
}

var Sim = donburi.NewComponentType[SimData]()
