package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// GlowData is a pulsing brightness written by the effects system from the
// entity's tween sequence and read by the renderer.
type GlowData struct {
	Alpha float64
}

var Glow = donburi.NewComponentType[GlowData]()
