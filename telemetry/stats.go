package telemetry

import (
	"log/slog"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Actor counts at window end
	Alive  int `csv:"alive"`
	Dead   int `csv:"dead"`
	Hidden int `csv:"hidden"`

	// Events during window
	Appears      int `csv:"appears"`
	Deaths       int `csv:"deaths"`
	NerveChanges int `csv:"nerve_changes"`
	Emits        int `csv:"emits"`

	// Effects alive at window end
	LiveEmitters int `csv:"live_emitters"`

	// Sensor contacts delivered during window
	Contacts int `csv:"contacts"`

	// Actor kind with the most events during window
	BusiestKind   string `csv:"busiest_kind"`
	BusiestEvents int    `csv:"busiest_events"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("alive", s.Alive),
		slog.Int("dead", s.Dead),
		slog.Int("hidden", s.Hidden),
		slog.Int("appears", s.Appears),
		slog.Int("deaths", s.Deaths),
		slog.Int("nerve_changes", s.NerveChanges),
		slog.Int("emits", s.Emits),
		slog.Int("live_emitters", s.LiveEmitters),
		slog.Int("contacts", s.Contacts),
		slog.String("busiest_kind", s.BusiestKind),
		slog.Int("busiest_events", s.BusiestEvents),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
