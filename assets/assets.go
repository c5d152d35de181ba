package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

type PlayerSpawn struct {
	X          float64
	Y          float64
	SpawnIndex int // 0-1, parsed from Tiled "spawnIndex" property
}

// TileSpawn is one solid collision tile from the blocks layer.
type TileSpawn struct {
	X, Y, Width, Height float64
	Kind                string // block, oneway, ice, bouncy, breakable, spike
	Ground              bool
}

// RampSpawn is a diagonal surface authored as a rect object.
type RampSpawn struct {
	X, Y, Width, Height float64
	FacingRight         bool // surface rises to the right
}

// MoverSpawn is a moving platform authored as a polyline whose points are
// the waypoints; the platform rect sits at the first point.
type MoverSpawn struct {
	Width, Height float64
	Points        []math.Vec2 // world coordinates
	Speed         float64
	Wait          float64
	Loop          bool
}

type CheckpointSpawn struct {
	X, Y, Width, Height float64
	CheckpointID        float64
}

type GoalSpawn struct {
	X, Y, Width, Height float64
}

type Level struct {
	Name         string
	Width        int
	Height       int
	Tiles        []TileSpawn
	Ramps        []RampSpawn
	Movers       []MoverSpawn
	PlayerSpawns []PlayerSpawn
	Checkpoints  []CheckpointSpawn
	Goal         *GoalSpawn
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			level := l.MustLoadLevel(levelPath)
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Name:   filepath.Base(levelPath),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	// Collision tiles from the blocks layer. Tile kind and ground flag come
	// from tileset tile properties.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "blocks" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				kind := "block"
				ground := false
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if k := tilesetTile.Properties.GetString("kind"); k != "" {
						kind = k
					}
					ground = tilesetTile.Properties.GetBool("ground")
				}

				level.Tiles = append(level.Tiles, TileSpawn{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					Width:  tileW,
					Height: tileH,
					Kind:   kind,
					Ground: ground,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawns":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X:          o.X,
					Y:          o.Y,
					SpawnIndex: o.Properties.GetInt("spawnIndex"),
				})
			}
			// Sort spawns so index assignment is deterministic
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].SpawnIndex < level.PlayerSpawns[j].SpawnIndex
			})
		case "MovingPlatforms":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: o.X + point.X,
						Y: o.Y + point.Y,
					}
				}
				level.Movers = append(level.Movers, MoverSpawn{
					Width:  o.Properties.GetFloat("width"),
					Height: o.Properties.GetFloat("height"),
					Points: points,
					Speed:  o.Properties.GetFloat("speed"),
					Wait:   o.Properties.GetFloat("wait"),
					Loop:   o.Properties.GetBool("loop"),
				})
			}
		case "Ramps":
			for _, o := range og.Objects {
				level.Ramps = append(level.Ramps, RampSpawn{
					X:           o.X,
					Y:           o.Y,
					Width:       o.Width,
					Height:      o.Height,
					FacingRight: o.Properties.GetString("facing") != "left",
				})
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, CheckpointSpawn{
					X:            o.X,
					Y:            o.Y,
					Width:        o.Width,
					Height:       o.Height,
					CheckpointID: o.Properties.GetFloat("checkpointID"),
				})
			}
		case "Goal":
			for _, o := range og.Objects {
				level.Goal = &GoalSpawn{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
			}
		}
	}

	return level
}
