package data

import (
	"encoding/json"
	"fmt"
)

// DemoDef defines a hand-made demo dungeon loaded from JSON.
type DemoDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "corridor")
	Name        string   `json:"name"`        // Display name
	Description string   `json:"description"` // What the demo shows off
	Grid        []string `json:"grid"`        // One string per row, equal lengths
	NeedsKeys   bool     `json:"needsKeys"`   // True if only the key-aware solver can finish it
}

// DemosFile represents the structure of dungeons.json.
type DemosFile struct {
	Demos []DemoDef `json:"demos"`
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadDemos loads the demo dungeon definitions from the embedded dungeons.json.
func LoadDemos() ([]DemoDef, error) {
	file, err := Load[DemosFile]("dungeons.json")
	if err != nil {
		return nil, err
	}
	return file.Demos, nil
}

// MustLoadDemos loads the demo dungeons, panicking on error.
// Use this where the embedded data must be present for the program to run.
func MustLoadDemos() []DemoDef {
	demos, err := LoadDemos()
	if err != nil {
		panic(err)
	}
	return demos
}
