package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	components.ScreenShake.Set(camera, &components.ScreenShakeData{})
}
