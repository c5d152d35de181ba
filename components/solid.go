package components

import "github.com/yohamta/donburi"

// SolidKind selects collision behavior for a solid block.
type SolidKind int

const (
	KindBlock SolidKind = iota
	KindOneWay
	KindIce
	KindBouncy
	KindBreakable
	KindSpike
	KindRampRight // surface rises to the right
	KindRampLeft  // surface rises to the left
)

type SolidData struct {
	Kind SolidKind

	// Ground blocks render darker than elevated ones; no physics effect.
	Ground bool
}

var Solid = donburi.NewComponentType[SolidData]()
