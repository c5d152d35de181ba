package scenes

import (
	"image/color"
	"sort"
	"sync"

	"github.com/automoto/chainbound/components"
	cfg "github.com/automoto/chainbound/config"
	"github.com/automoto/chainbound/systems"
	"github.com/automoto/chainbound/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClimbScene is the gameplay scene: two chained bodies working through a
// level toward the shared goal.
type ClimbScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	fromSave     bool
	once         sync.Once
}

// NewClimbScene creates the gameplay scene. When fromSave is set, the run
// resumes at the saved checkpoint.
func NewClimbScene(sc SceneChanger, fromSave bool) *ClimbScene {
	return &ClimbScene{sceneChanger: sc, fromSave: fromSave}
}

func (cs *ClimbScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if levelEntry, ok := components.Level.First(cs.ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.Completed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			_ = systems.ClearProgress()
			cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger))
			return
		}
	}

	// Escape returns to the menu; checkpoint progress stays saved
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger))
	}
}

func (cs *ClimbScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *ClimbScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSimulation)
	e.AddSystem(systems.UpdateCheckpoints)
	e.AddSystem(systems.UpdateGoal)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayers)
	e.AddRenderer(cfg.Default, systems.DrawChain)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = e

	var saved *systems.SavedProgress
	if cs.fromSave {
		saved, _ = systems.LoadProgress()
	}

	// The level entity loads first; the space needs its dimensions
	levelIndex := 0
	if saved != nil {
		levelIndex = saved.LevelIndex
	}
	levelEntry := factory.CreateLevelAtIndex(e, levelIndex)
	level := components.Level.Get(levelEntry)
	lv := level.CurrentLevel

	factory.CreateSpace(e, lv.Width, lv.Height, 16, 16)
	factory.CreateCamera(e)
	factory.CreateSim(e)

	for _, tile := range lv.Tiles {
		factory.CreateSolid(e, tile.X, tile.Y, tile.Width, tile.Height, tile.Kind, tile.Ground)
	}
	for _, ramp := range lv.Ramps {
		factory.CreateRamp(e, ramp.X, ramp.Y, ramp.Width, ramp.Height, ramp.FacingRight)
	}
	for _, mv := range lv.Movers {
		factory.CreateMover(e, mv.Width, mv.Height, mv.Points, mv.Speed, mv.Wait, mv.Loop)
	}
	for _, cp := range lv.Checkpoints {
		factory.CreateCheckpoint(e, cp.X, cp.Y, cp.Width, cp.Height, cp.CheckpointID)
	}
	if lv.Goal != nil {
		factory.CreateGoal(e, lv.Goal.X, lv.Goal.Y, lv.Goal.Width, lv.Goal.Height)
	}

	cs.spawnPlayers(e, level)
	factory.CreateChain(e)

	if saved != nil {
		cs.applySavedCheckpoint(e, level, saved)
	}

	cs.snapCamera(e)
}

// spawnPlayers creates both bodies at their authored spawn points, in
// spawn index order.
func (cs *ClimbScene) spawnPlayers(e *ecs.ECS, level *components.LevelData) {
	spawns := level.CurrentLevel.PlayerSpawns
	if len(spawns) < 2 {
		panic("level must define two player spawn points")
	}
	sorted := make([]int, len(spawns))
	for i := range sorted {
		sorted[i] = i
	}
	sort.Slice(sorted, func(i, j int) bool {
		return spawns[sorted[i]].SpawnIndex < spawns[sorted[j]].SpawnIndex
	})

	for i := 0; i < 2; i++ {
		s := spawns[sorted[i]]
		factory.CreatePlayer(e, s.X, s.Y, i)
	}
}

// applySavedCheckpoint restores the active checkpoint and moves both
// bodies onto it.
func (cs *ClimbScene) applySavedCheckpoint(e *ecs.ECS, level *components.LevelData, saved *systems.SavedProgress) {
	level.ActiveCheckpoint = &components.ActiveCheckpointData{
		SpawnX:       saved.CheckpointSpawnX,
		SpawnY:       saved.CheckpointSpawnY,
		CheckpointID: saved.CheckpointID,
	}

	// Mark already reached checkpoints as activated
	for entry := range components.Checkpoint.Iter(e.World) {
		cp := components.Checkpoint.Get(entry)
		if cp.CheckpointID <= saved.CheckpointID {
			cp.Activated = true
		}
	}

	i := 0
	for _, entry := range cs.playerEntries(e) {
		obj := components.Object.Get(entry)
		obj.X = saved.CheckpointSpawnX - obj.W/2 + float64(i*40-20)
		obj.Y = saved.CheckpointSpawnY - obj.H/2
		obj.Update()
		i++
	}
}

func (cs *ClimbScene) playerEntries(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Player.Get(entries[i]).PlayerIndex < components.Player.Get(entries[j]).PlayerIndex
	})
	return entries
}

// snapCamera centers the camera on the pair immediately so the scene does
// not pan in from the origin.
func (cs *ClimbScene) snapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	players := cs.playerEntries(e)
	if len(players) < 2 {
		return
	}
	objA := components.Object.Get(players[0])
	objB := components.Object.Get(players[1])
	camera.Position.X = ((objA.X + objA.W/2) + (objB.X + objB.W/2)) / 2
	camera.Position.Y = ((objA.Y + objA.H/2) + (objB.Y + objB.H/2)) / 2
}
