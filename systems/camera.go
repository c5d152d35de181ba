package systems

import (
	"math"

	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/mathutil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the midpoint between the two
// players, clamped to the level bounds, and applies any active shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	a, b, ok := playerPair(e)
	if ok {
		objA := components.Object.Get(a)
		objB := components.Object.Get(b)
		targetX := ((objA.X + objA.W/2) + (objB.X + objB.W/2)) / 2
		targetY := ((objA.Y + objA.H/2) + (objB.Y + objB.H/2)) / 2

		if lv := currentLevel(e); lv != nil {
			halfW := float64(cfg.C.Width) / 2
			halfH := float64(cfg.C.Height) / 2
			targetX = mathutil.Clamp(targetX, halfW, math.Max(halfW, float64(lv.Width)-halfW))
			targetY = mathutil.Clamp(targetY, halfH, math.Max(halfH, float64(lv.Height)-halfH))
		}

		camera.Position.X = mathutil.Lerp(camera.Position.X, targetX, cfg.Camera.FollowSmoothing)
		camera.Position.Y = mathutil.Lerp(camera.Position.Y, targetY, cfg.Camera.FollowSmoothing)
	}

	updateScreenShake(e, camera)
}

func updateScreenShake(e *ecs.ECS, camera *components.CameraData) {
	shakeEntry, ok := components.ScreenShake.First(e.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(shakeEntry)
	if shake.Duration <= 0 {
		return
	}

	shake.Elapsed++
	shake.Duration--

	// Decaying oscillation, alternating direction each frame
	falloff := float64(shake.Duration) / float64(shake.Duration+shake.Elapsed)
	offset := shake.Intensity * falloff
	if shake.Elapsed%2 == 0 {
		offset = -offset
	}
	camera.Position.X += offset
	camera.Position.Y += offset * 0.5
}

// TriggerScreenShake starts (or restarts) a camera shake.
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	shakeEntry, ok := components.ScreenShake.First(e.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(shakeEntry)
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}
