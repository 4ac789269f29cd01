package telemetry

import (
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Frame passes, in run order. The names prefix the perf.csv columns.
const (
	PassCamera    = "camera"
	PassMovement  = "movement"
	PassSensors   = "sensors"
	PassCalcMtx   = "calc_mtx"
	PassEffects   = "effects"
	PassTelemetry = "telemetry"
)

// Passes lists every pass in run order.
var Passes = [...]string{PassCamera, PassMovement, PassSensors, PassCalcMtx, PassEffects, PassTelemetry}

const noPass = -1

func passIndex(name string) int {
	for i, p := range Passes {
		if p == name {
			return i
		}
	}
	panic(fmt.Sprintf("telemetry: unknown pass %q", name))
}

// FrameSample is the wall time of one scene frame, split by pass.
type FrameSample struct {
	Wall     time.Duration
	Advanced float64 // scene frames the update stepped
	Pass     [len(Passes)]time.Duration
}

// PerfCollector keeps the pass timings of the last window frames in a ring.
type PerfCollector struct {
	ring   []FrameSample
	next   int
	filled int

	cur   FrameSample
	begin time.Time
	mark  time.Time
	pass  int
}

// NewPerfCollector returns a collector averaging over window frames.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]FrameSample, window), pass: noPass}
}

func (p *PerfCollector) BeginFrame() {
	p.begin = time.Now()
	p.cur = FrameSample{}
	p.pass = noPass
}

// BeginPass closes the running pass and starts timing name. It panics on a
// name missing from Passes.
func (p *PerfCollector) BeginPass(name string) {
	now := time.Now()
	p.closePass(now)
	p.pass = passIndex(name)
	p.mark = now
}

func (p *PerfCollector) closePass(now time.Time) {
	if p.pass != noPass {
		p.cur.Pass[p.pass] += now.Sub(p.mark)
	}
}

// EndFrame closes the frame, which advanced the scene by advanced frames.
func (p *PerfCollector) EndFrame(advanced float64) {
	now := time.Now()
	p.closePass(now)
	p.pass = noPass

	p.cur.Wall = now.Sub(p.begin)
	p.cur.Advanced = advanced
	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

// PerfStats summarises the window.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	P90Frame time.Duration

	PassAvg map[string]time.Duration
	PassPct map[string]float64 // share of the average frame

	UpdatesPerSec float64
	// SceneSpeed is scene frames advanced per wall second over 60, so 1 is
	// real time for a 60 Hz scene.
	SceneSpeed float64
}

func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PassAvg: make(map[string]time.Duration, len(Passes)),
		PassPct: make(map[string]float64, len(Passes)),
	}
	if p.filled == 0 {
		return s
	}

	var wall time.Duration
	var advanced float64
	var passSum [len(Passes)]time.Duration
	walls := make([]float64, 0, p.filled)
	for i, f := range p.ring[:p.filled] {
		wall += f.Wall
		advanced += f.Advanced
		walls = append(walls, float64(f.Wall))
		if i == 0 || f.Wall < s.MinFrame {
			s.MinFrame = f.Wall
		}
		s.MaxFrame = max(s.MaxFrame, f.Wall)
		for j, d := range f.Pass {
			passSum[j] += d
		}
	}

	n := time.Duration(p.filled)
	s.AvgFrame = wall / n
	sort.Float64s(walls)
	s.P90Frame = time.Duration(Percentile(walls, 0.9))

	for j, sum := range passSum {
		if sum == 0 {
			continue
		}
		avg := sum / n
		s.PassAvg[Passes[j]] = avg
		if s.AvgFrame > 0 {
			s.PassPct[Passes[j]] = float64(avg) / float64(s.AvgFrame) * 100
		}
	}

	if s.AvgFrame > 0 {
		s.UpdatesPerSec = float64(time.Second) / float64(s.AvgFrame)
	}
	if wall > 0 {
		s.SceneSpeed = advanced / wall.Seconds() / 60
	}
	return s
}

// LogStats logs the window at info, with the share of each pass above 0.1%.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrame.Microseconds(),
		"max_frame_us", s.MaxFrame.Microseconds(),
		"p90_frame_us", s.P90Frame.Microseconds(),
		"updates_per_sec", int(s.UpdatesPerSec),
		"scene_speed", float64(int(s.SceneSpeed*100)) / 100,
	}
	for _, pass := range Passes {
		if pct := s.PassPct[pass]; pct > 0.1 {
			attrs = append(attrs, pass+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("p90_frame_us", s.P90Frame.Microseconds()),
		slog.Float64("updates_per_sec", s.UpdatesPerSec),
		slog.Float64("scene_speed", s.SceneSpeed),
	}
	for _, pass := range Passes {
		if pct, ok := s.PassPct[pass]; ok {
			attrs = append(attrs, slog.Float64(pass+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd     int64   `csv:"window_end"`
	AvgFrameUS    int64   `csv:"avg_frame_us"`
	MinFrameUS    int64   `csv:"min_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	P90FrameUS    int64   `csv:"p90_frame_us"`
	UpdatesPerSec float64 `csv:"updates_per_sec"`
	SceneSpeed    float64 `csv:"scene_speed"`
	CameraPct     float64 `csv:"camera_pct"`
	MovementPct   float64 `csv:"movement_pct"`
	SensorsPct    float64 `csv:"sensors_pct"`
	CalcMtxPct    float64 `csv:"calc_mtx_pct"`
	EffectsPct    float64 `csv:"effects_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		AvgFrameUS:    s.AvgFrame.Microseconds(),
		MinFrameUS:    s.MinFrame.Microseconds(),
		MaxFrameUS:    s.MaxFrame.Microseconds(),
		P90FrameUS:    s.P90Frame.Microseconds(),
		UpdatesPerSec: s.UpdatesPerSec,
		SceneSpeed:    s.SceneSpeed,
		CameraPct:     s.PassPct[PassCamera],
		MovementPct:   s.PassPct[PassMovement],
		SensorsPct:    s.PassPct[PassSensors],
		CalcMtxPct:    s.PassPct[PassCalcMtx],
		EffectsPct:    s.PassPct[PassEffects],
		TelemetryPct:  s.PassPct[PassTelemetry],
	}
}
