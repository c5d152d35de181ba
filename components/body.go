package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the dynamic state of a player body. Grounded persists from
// the previous step through rider attachment and integration (the chain
// solver reads it for anchor weighting) and is reset and re-asserted by
// the collision stage.
type BodyData struct {
	SpeedX float64
	SpeedY float64

	Grounded bool

	// Surface friction multiplier. 1 = instant stop on release; below 1
	// the body glides. Reset to 1 each collision pass.
	Friction float64

	// Horizontal momentum carried off a moving platform. Decays while
	// airborne, zeroed on landing.
	MomentumX float64

	// Platform currently ridden, nil when not riding.
	OnMover *resolv.Object
}

var Body = donburi.NewComponentType[BodyData]()
