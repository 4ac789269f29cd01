package systems

import "github.com/pthm-cable/mapactors/telemetry"

// SystemInfo describes one pass of the frame.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this pass does
	Category    string // Grouping (e.g., "core", "visual")
}

// SystemRegistry holds metadata about all passes.
// This centralizes naming so the perf tracker and logs stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// Pass identifiers, in frame order. They double as perf phase names.
const (
	PassCamera    = telemetry.PassCamera
	PassMovement  = telemetry.PassMovement
	PassSensors   = telemetry.PassSensors
	PassCalcMtx   = telemetry.PassCalcMtx
	PassEffects   = telemetry.PassEffects
	PassTelemetry = telemetry.PassTelemetry
)

// NewSystemRegistry creates a registry with all known passes.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known passes in frame order.
// Update this when adding new passes.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PassCamera, Name: "Camera", Description: "Advances the orbit camera", Category: "core"})
	r.Register(SystemInfo{ID: PassMovement, Name: "Movement", Description: "Steps nerves and runs actor movement", Category: "core"})
	r.Register(SystemInfo{ID: PassSensors, Name: "Sensors", Description: "Rebuilds the hit sensor grid and delivers contacts", Category: "core"})
	r.Register(SystemInfo{ID: PassCalcMtx, Name: "Calc Mtx", Description: "Computes base and joint matrices", Category: "core"})
	r.Register(SystemInfo{ID: PassEffects, Name: "Effects", Description: "Ages and retires emitters", Category: "visual"})
	r.Register(SystemInfo{ID: PassTelemetry, Name: "Telemetry", Description: "Collects stats and writes output", Category: "internal"})
}

// Register adds a pass to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns pass info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a pass ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered passes.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns passes filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all pass IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
