package systems

import (
	"encoding/json"
	"log"

	"github.com/petragon/stonefall/components"
	"github.com/quasilyte/gdata"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for launcher save/resume
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stonefall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadLauncher loads the saved trebuchet parameters from disk. A nil result
// with nil error means nothing was saved yet.
func LoadLauncher() (*components.SavedLauncher, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("launcher")
	if err != nil {
		log.Printf("Warning: Could not load launcher state: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var saved components.SavedLauncher
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved launcher state: %v", err)
		return nil, err
	}

	return &saved, nil
}

// SaveLauncher persists the launcher's current parameters
func SaveLauncher(l *components.LauncherData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	saved := l.Save()
	data, err := json.Marshal(&saved)
	if err != nil {
		log.Printf("Warning: Could not serialize launcher state: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("launcher", data); err != nil {
		log.Printf("Warning: Could not save launcher state: %v", err)
		return err
	}
	return nil
}

// ApplySavedLauncher restores saved parameters through the clamping setters
func ApplySavedLauncher(l *components.LauncherData, saved *components.SavedLauncher) {
	if saved == nil {
		return
	}
	l.Restore(*saved)
}
