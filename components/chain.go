package components

import "github.com/yohamta/donburi"

// ChainData is the constraint joining the two player bodies.
type ChainData struct {
	MaxLength  float64
	Iterations int

	// Distance between body centers after the last solve, for rendering
	// tautness.
	Length float64
}

var Chain = donburi.NewComponentType[ChainData]()
