// Package game is the headless scene driver. It loads a placement, prefetches
// archives, builds every actor through the factory table and runs the
// per-frame passes over them in registration order.
package game

import (
	"fmt"
	"log/slog"

	"github.com/kamstrup/intmap"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/actors"
	"github.com/pthm-cable/mapactors/camera"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/rail"
	"github.com/pthm-cable/mapactors/systems"
	"github.com/pthm-cable/mapactors/telemetry"
)

// Slot is the ark component holding a registered host.
type Slot struct {
	Host actor.Host
}

// Registration records when and under which owner a host joined the scene.
type Registration struct {
	ID     int
	Tick   int64
	Parent int // ID of the owning actor, or -1
}

// Options configures a new game.
type Options struct {
	Config        *config.Config // nil uses config.Cfg()
	Scene         *config.Scene  // nil loads PlacementPath
	PlacementPath string         // empty uses the embedded demo scene
	Seed          uint64         // 0 keeps the package random source
	LogStats      bool
	OutputDir     string
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete scene state.
type Game struct {
	cfg   *config.Config
	world *ecs.World

	slotMap   *ecs.Map2[Slot, Registration]
	regMap    *ecs.Map[Registration]
	hostQuery *ecs.Filter2[Slot, Registration]
	byID      *intmap.Map[int, ecs.Entity]
	seen      map[*actor.Actor]bool

	env      *sceneEnv
	archives *systems.ArchiveCache
	rails    map[string]rail.Rail
	orbit    *camera.Orbit
	grid     *systems.SensorGrid
	contacts []systems.Contact
	registry *systems.SystemRegistry

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	lifetime      *telemetry.LifetimeTracker
	outputManager *telemetry.OutputManager
	events        []telemetry.Event
	trace         []telemetry.TraceRow
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	tick        int64
	totalFrames float64
	nextID      int
	count       int
}

// NewGameWithOptions builds the scene described by opts.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	scene := opts.Scene
	if scene == nil {
		s, err := config.LoadScene(opts.PlacementPath)
		if err != nil {
			return nil, err
		}
		scene = s
	}
	if opts.Seed != 0 {
		geom.Seed(opts.Seed)
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:           cfg,
		world:         world,
		slotMap:       ecs.NewMap2[Slot, Registration](world),
		regMap:        ecs.NewMap[Registration](world),
		hostQuery:     ecs.NewFilter2[Slot, Registration](world),
		byID:          intmap.New[int, ecs.Entity](max(len(scene.Objects), 64)),
		seen:          make(map[*actor.Actor]bool),
		archives:      systems.NewArchiveCache(cfg.Derived.ArchiveSet),
		rails:         make(map[string]rail.Rail, len(scene.Rails)),
		orbit:         camera.NewOrbit(cfg.Camera),
		grid:          systems.NewSensorGrid(cfg.Sensors.CellSize),
		registry:      systems.NewSystemRegistry(),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.SecondsPerTick),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		lifetime:      telemetry.NewLifetimeTracker(),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
		nextID:        len(scene.Objects),
	}
	g.env = newSceneEnv(g)

	if err := g.buildRails(scene.Rails); err != nil {
		return nil, err
	}

	placements := make([]components.Placement, len(scene.Objects))
	entries := make([]actors.Entry, len(scene.Objects))
	for i, o := range scene.Objects {
		e, ok := actors.Lookup(o.Name)
		if !ok {
			return nil, fmt.Errorf("object %d: unknown object %q", i, o.Name)
		}
		placements[i] = components.NewPlacement(o, i)
		entries[i] = e
	}

	// Every archive is requested before the first actor is built.
	for i := range placements {
		entries[i].RequestArchives(g.env, &placements[i])
	}

	for i, p := range placements {
		h := entries[i].New(g.env, p)
		g.registerBuilt(h)
	}

	// Hosts appear with a posed base matrix before the first movement pass.
	frame := g.frame(0)
	g.eachHost(func(h actor.Host) { actor.CalcMtx(h, frame) })

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	slog.Info("scene built",
		"objects", len(scene.Objects),
		"actors", g.count,
		"rails", len(g.rails),
		"archives", len(g.archives.Requested()),
		"missing_archives", len(g.archives.Missing()),
	)
	return g, nil
}

func (g *Game) buildRails(specs []config.RailSpec) error {
	for _, s := range specs {
		pts := make([]r3.Vec, len(s.Points))
		for i, p := range s.Points {
			pts[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		}
		r, err := rail.NewPolyline(pts, s.Loop)
		if err != nil {
			return fmt.Errorf("building rail %q: %w", s.Name, err)
		}
		g.rails[s.Name] = r
	}
	return nil
}

// Tick returns the number of frames run so far.
func (g *Game) Tick() int64 { return g.tick }

// Config returns the configuration the scene was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Archives returns the archive prefetch bookkeeping.
func (g *Game) Archives() *systems.ArchiveCache { return g.archives }

// Camera returns the tracked viewpoint.
func (g *Game) Camera() *camera.Orbit { return g.orbit }

// Actors returns every registered host in registration order.
func (g *Game) Actors() []actor.Host {
	out := make([]actor.Host, 0, g.count)
	g.eachHost(func(h actor.Host) { out = append(out, h) })
	return out
}

// ActorByID returns the host registered under id.
func (g *Game) ActorByID(id int) (actor.Host, bool) {
	e, ok := g.byID.Get(id)
	if !ok || !g.world.Alive(e) {
		return nil, false
	}
	s, _ := g.slotMap.Get(e)
	return s.Host, true
}

// Unload flushes telemetry output and releases the world.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.WriteEvents(g.events); err != nil {
			slog.Error("failed to write events", "error", err)
		}
		g.events = g.events[:0]
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
		g.outputManager = nil
	}

	var entities []ecs.Entity
	query := g.hostQuery.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}
	for _, e := range entities {
		g.world.RemoveEntity(e)
	}
	g.byID.Clear()
	clear(g.seen)
	g.count = 0
}

// RegistrationOf returns the registration record of the host with id.
func (g *Game) RegistrationOf(id int) (Registration, bool) {
	e, ok := g.byID.Get(id)
	if !ok || !g.world.Alive(e) {
		return Registration{}, false
	}
	return *g.regMap.Get(e), true
}

func (g *Game) eachHost(fn func(h actor.Host)) {
	query := g.hostQuery.Query()
	for query.Next() {
		s, _ := query.Get()
		fn(s.Host)
	}
}

func (g *Game) frame(dt float64) *actor.Frame {
	return &actor.Frame{
		Tick:        g.tick,
		DeltaFrames: dt,
		TotalFrames: g.totalFrames,
		Camera:      g.orbit,
	}
}
