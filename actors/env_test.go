package actors

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/rail"
	"github.com/pthm-cable/mapactors/systems"
)

func init() {
	config.MustInit("")
}

// testEnv builds actors against the real headless collaborators.
type testEnv struct {
	cfg        *config.Config
	archives   *systems.ArchiveCache
	rails      map[string]rail.Rail
	registered []actor.Host
	shared     map[string]actor.Host
}

func newTestEnv() *testEnv {
	cfg := config.Cfg()
	return &testEnv{
		cfg:      cfg,
		archives: systems.NewArchiveCache(cfg.Derived.ArchiveSet),
		rails:    make(map[string]rail.Rail),
		shared:   make(map[string]actor.Host),
	}
}

func (e *testEnv) Archives() actor.Archives { return e.archives }

func (e *testEnv) NewModel(name string) actor.Model {
	if !e.cfg.Derived.ArchiveSet[name] {
		return nil
	}
	asset, ok := e.cfg.Derived.ModelIndex[name]
	if !ok {
		asset = config.ModelAsset{Name: name}
	}
	return systems.NewAnimPlayer(asset, e.cfg.Assets.DefaultAnimFrames)
}

func (e *testEnv) NewEffects(a *actor.Actor, group string) actor.Effects {
	return systems.NewEffectKeeper(group, e.cfg.Effects[group], &a.Translation)
}

func (e *testEnv) NPCItem(npc string, index int) (config.NPCItem, bool) {
	return e.cfg.NPCItem(npc, index)
}

func (e *testEnv) Rail(name string) (rail.Rail, bool) {
	r, ok := e.rails[name]
	return r, ok
}

func (e *testEnv) Register(h actor.Host) { e.registered = append(e.registered, h) }

func (e *testEnv) Shared(key string, build func() actor.Host) actor.Host {
	if h, ok := e.shared[key]; ok {
		return h
	}
	h := build()
	e.shared[key] = h
	e.registered = append(e.registered, h)
	return h
}

func (e *testEnv) addRail(t *testing.T, name string, loop bool, pts ...r3.Vec) {
	t.Helper()
	r, err := rail.NewPolyline(pts, loop)
	require.NoError(t, err)
	e.rails[name] = r
}

// placement builds a placement the way the scene loader does.
func placement(name string, trans r3.Vec, args ...float64) components.Placement {
	return components.NewPlacement(config.ObjectSpec{
		Name:        name,
		Translation: [3]float64{trans.X, trans.Y, trans.Z},
		Args:        args,
	}, 0)
}

func railPlacement(name, railName string, trans r3.Vec, args ...float64) components.Placement {
	p := placement(name, trans, args...)
	p.RailName = railName
	return p
}

// run steps h and its parts for n frames, then runs the matrix pass.
func run(h actor.Host, n int, cam actor.Camera) {
	for i := 0; i < n; i++ {
		f := &actor.Frame{Tick: int64(i + 1), DeltaFrames: 1, TotalFrames: float64(i + 1), Camera: cam}
		stepTree(h, f)
	}
}

func stepTree(h actor.Host, f *actor.Frame) {
	actor.Step(h, f)
	actor.CalcMtx(h, f)
	for _, p := range h.Base().Parts {
		stepTree(p, f)
	}
}

// fixedCamera is a camera parked at a point that sees everything within far.
type fixedCamera struct {
	pos r3.Vec
	far float64
}

func (c fixedCamera) Position() r3.Vec { return c.pos }
func (c fixedCamera) Up() r3.Vec       { return r3.Vec{Y: 1} }
func (c fixedCamera) Front() r3.Vec    { return r3.Vec{Z: 1} }

func (c fixedCamera) ContainsSphere(center r3.Vec, radius float64) bool {
	return r3.Norm(r3.Sub(center, c.pos))-radius <= c.far
}

// transition is a nerve entered during frame.
type transition struct {
	frame int
	nerve string
}

// traceNerves steps h for n frames and records every nerve change, starting
// with the nerve h was built in at frame 0. each, when set, runs after every
// frame.
func traceNerves(h actor.Host, n int, cam actor.Camera, each func(frame int)) []transition {
	a := h.Base()
	trace := []transition{{0, a.NerveName()}}
	for i := 1; i <= n; i++ {
		f := &actor.Frame{Tick: int64(i), DeltaFrames: 1, TotalFrames: float64(i), Camera: cam}
		stepTree(h, f)
		if name := a.NerveName(); name != trace[len(trace)-1].nerve {
			trace = append(trace, transition{i, name})
		}
		if each != nil {
			each(i)
		}
	}
	return trace
}

// nerveGaps returns the frames spent in each traced nerve but the last.
func nerveGaps(trace []transition) []int {
	gaps := make([]int, 0, len(trace))
	for i := 1; i < len(trace); i++ {
		gaps = append(gaps, trace[i].frame-trace[i-1].frame)
	}
	return gaps
}

func nerveNames(trace []transition) []string {
	names := make([]string, len(trace))
	for i, tr := range trace {
		names[i] = tr.nerve
	}
	return names
}
