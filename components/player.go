package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	PlayerIndex int
	Facing      float64 // DirectionLeft / DirectionRight

	// Initial spawn, used when no checkpoint is active
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
