package assets

import "testing"

func TestMustLoadLevels(t *testing.T) {
	loader := NewLevelLoader()
	levels := loader.MustLoadLevels()
	if len(levels) == 0 {
		t.Fatal("no embedded levels loaded")
	}
}

func TestLevelOneContents(t *testing.T) {
	loader := NewLevelLoader()
	levels := loader.MustLoadLevels()
	lv := levels[0]

	if lv.Width <= 0 || lv.Height <= 0 {
		t.Fatalf("level dimensions %dx%d", lv.Width, lv.Height)
	}
	if len(lv.PlayerSpawns) != 2 {
		t.Fatalf("player spawns = %d, want 2", len(lv.PlayerSpawns))
	}
	if len(lv.Tiles) == 0 {
		t.Fatal("no collision tiles parsed from the blocks layer")
	}
	if len(lv.Movers) != 2 {
		t.Fatalf("movers = %d, want 2", len(lv.Movers))
	}
	if len(lv.Checkpoints) != 2 {
		t.Fatalf("checkpoints = %d, want 2", len(lv.Checkpoints))
	}
	if len(lv.Ramps) != 1 {
		t.Fatalf("ramps = %d, want 1", len(lv.Ramps))
	}
	if lv.Goal == nil {
		t.Fatal("no goal zone parsed")
	}
}

func TestMoverWaypointsAreWorldCoordinates(t *testing.T) {
	loader := NewLevelLoader()
	levels := loader.MustLoadLevels()

	for _, mv := range levels[0].Movers {
		if len(mv.Points) < 2 {
			t.Fatalf("mover has %d waypoints, want >= 2", len(mv.Points))
		}
		if mv.Speed <= 0 {
			t.Fatalf("mover speed = %.2f, want > 0", mv.Speed)
		}
		for _, p := range mv.Points {
			if p.X < 0 || p.Y < 0 {
				t.Fatalf("waypoint (%.1f, %.1f) outside the level", p.X, p.Y)
			}
		}
	}
}

func TestTileKindsRecognized(t *testing.T) {
	loader := NewLevelLoader()
	levels := loader.MustLoadLevels()

	known := map[string]bool{
		"block": true, "oneway": true, "ice": true,
		"bouncy": true, "breakable": true, "spike": true,
	}
	seen := map[string]bool{}
	for _, tile := range levels[0].Tiles {
		if !known[tile.Kind] {
			t.Fatalf("unknown tile kind %q", tile.Kind)
		}
		seen[tile.Kind] = true
	}
	for kind := range known {
		if !seen[kind] {
			t.Errorf("level exercises no %q tiles", kind)
		}
	}
}
