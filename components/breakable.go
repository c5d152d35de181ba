package components

import "github.com/yohamta/donburi"

type BreakableData struct {
	StoodOn bool    // set by the collision pass on top contact
	Crumble float64 // seconds of standing accumulated
	Broken  bool
	Respawn float64 // seconds until a broken block restores
}

var Breakable = donburi.NewComponentType[BreakableData]()
