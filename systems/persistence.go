package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/chainbound/components"
	"github.com/quasilyte/gdata"
)

// SavedProgress is the game progress stored on disk.
type SavedProgress struct {
	LevelIndex       int     `json:"levelIndex"`
	CheckpointID     float64 `json:"checkpointId"`
	CheckpointSpawnX float64 `json:"checkpointSpawnX"`
	CheckpointSpawnY float64 `json:"checkpointSpawnY"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage.
// The game keeps running without saves if this fails.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "chainbound",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress from disk. Returns nil with no error
// when nothing has been saved yet.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveProgress writes the active checkpoint to disk.
func SaveProgress(levelIndex int, checkpoint *components.ActiveCheckpointData) error {
	if !gdataInitialized || gdataManager == nil || checkpoint == nil {
		return nil
	}

	progress := &SavedProgress{
		LevelIndex:       levelIndex,
		CheckpointID:     checkpoint.CheckpointID,
		CheckpointSpawnX: checkpoint.SpawnX,
		CheckpointSpawnY: checkpoint.SpawnY,
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Printf("Warning: Could not serialize game progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return err
	}

	return nil
}

// HasSaveGame returns true if saved progress exists.
func HasSaveGame() bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem("progress")
	return err == nil && len(data) > 0
}

// ClearProgress removes any saved progress.
func ClearProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem("progress", nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}

	return nil
}
