package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the scene state at one tick.
type Snapshot struct {
	Version int    `json:"version"`
	Seed    uint64 `json:"seed"`
	Scene   string `json:"scene"`
	Tick    int64  `json:"tick"`

	Actors []ActorState `json:"actors"`
}

// ActorState holds one actor's observable state.
type ActorState struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Model  string     `json:"model"`
	Pos    [3]float64 `json:"pos"`
	Dead   bool       `json:"dead"`
	Hidden bool       `json:"hidden"`
	Nerve  string     `json:"nerve,omitempty"`
	Bucket string     `json:"bucket"`

	// Lifetime stats
	Lifetime *LifetimeStatsJSON `json:"lifetime,omitempty"`
}

// LifetimeStatsJSON is the JSON-serializable form of LifetimeStats.
type LifetimeStatsJSON struct {
	RegisterTick int64 `json:"register_tick"`
	Appears      int   `json:"appears"`
	Deaths       int   `json:"deaths"`
	NerveChanges int   `json:"nerve_changes"`
	Emits        int   `json:"emits"`
}

// ToJSON converts LifetimeStats to its JSON form.
func (ls *LifetimeStats) ToJSON() *LifetimeStatsJSON {
	if ls == nil {
		return nil
	}
	return &LifetimeStatsJSON{
		RegisterTick: ls.RegisterTick,
		Appears:      ls.Appears,
		Deaths:       ls.Deaths,
		NerveChanges: ls.NerveChanges,
		Emits:        ls.Emits,
	}
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snapshot_%d.json", snapshot.Tick))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
