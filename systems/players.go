package systems

import (
	"sort"

	"github.com/automoto/chainbound/assets"
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sortedPlayers returns the player entries ordered by index so every
// per-body pass is deterministic.
func sortedPlayers(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Player.Get(entries[i]).PlayerIndex < components.Player.Get(entries[j]).PlayerIndex
	})
	return entries
}

// playerPair returns the two chained bodies, lowest index first.
func playerPair(e *ecs.ECS) (*donburi.Entry, *donburi.Entry, bool) {
	players := sortedPlayers(e)
	if len(players) < 2 {
		return nil, nil, false
	}
	return players[0], players[1], true
}

func currentLevel(e *ecs.ECS) *assets.Level {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry).CurrentLevel
}
