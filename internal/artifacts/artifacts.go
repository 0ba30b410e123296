// Package artifacts handles per-run filesystem bookkeeping: run
// identifiers, save-directory layout, and model checkpoints.
package artifacts

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// preprocessSubdirs is the fixed directory set a preprocess run writes
// its per-variable outputs into.
var preprocessSubdirs = []string{
	"pressure", "temperature", "salinity", "ssh", "sst", "bio",
}

// IssueID derives a run tag from the wall clock, second plus centisecond
// precision: YYYY-MMDD-HHMM-SScc.
func IssueID(now time.Time) string {
	return fmt.Sprintf("%s%02d", now.Format("2006-0102-1504-05"), now.Nanosecond()/1e7)
}

// Prepare creates the save directory, the preprocess subdirectory set
// when mode is "preprocess", and serializes cfg as indented JSON into
// config.json inside it.
func Prepare(mode string, cfg interface{}, saveDir string) error {
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}

	if mode == "preprocess" {
		for _, sub := range preprocessSubdirs {
			if err := os.MkdirAll(filepath.Join(saveDir, sub), 0o755); err != nil {
				return fmt.Errorf("failed to create %s dir: %w", sub, err)
			}
		}
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(saveDir, "config.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config.json: %w", err)
	}
	return nil
}

// Checkpoint is a model parameter state: named float32 tensors.
type Checkpoint map[string][]float32

// SaveCheckpoint writes the parameter state to path, creating parent
// directories as needed.
func SaveCheckpoint(state Checkpoint, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create checkpoint dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(state); err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a parameter state written by SaveCheckpoint.
func LoadCheckpoint(path string) (Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	defer f.Close()

	var state Checkpoint
	if err := gob.NewDecoder(f).Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	return state, nil
}
