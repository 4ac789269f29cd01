package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/telemetry"
)

func init() {
	config.MustInit("")
}

type prop struct {
	actor.Actor
	moves int
}

func newProp(name string, pos r3.Vec) *prop {
	return &prop{Actor: actor.NewActor(components.NewPlacementAt(name, pos))}
}

func (p *prop) Movement(*actor.Frame) { p.moves++ }

type bomb struct {
	actor.Actor
}

func (b *bomb) Movement(*actor.Frame) { panic("boom") }

type attacker struct {
	prop
	hits []string
}

func (a *attacker) AttackSensor(self, other *actor.HitSensor) {
	a.hits = append(a.hits, other.Owner.Base().Name)
}

func emptyGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGameWithOptions(Options{Scene: &config.Scene{}})
	require.NoError(t, err)
	t.Cleanup(g.Unload)
	return g
}

func TestDemoSceneBuildsAndRuns(t *testing.T) {
	scene, err := config.LoadScene("")
	require.NoError(t, err)

	g, err := NewGameWithOptions(Options{Scene: scene, Seed: 7})
	require.NoError(t, err)
	defer g.Unload()

	assert.Greater(t, len(g.Actors()), len(scene.Objects), "parts and pool members are registered too")
	for i, o := range scene.Objects {
		h, ok := g.ActorByID(i)
		require.True(t, ok, "object %d (%s) not registered", i, o.Name)
		assert.Equal(t, o.Name, h.Base().Name)
	}

	requested := g.Archives().Requested()
	assert.Contains(t, requested, "Tico")
	assert.Contains(t, requested, "AirBubble")

	for i := 0; i < 300; i++ {
		g.Update()
	}
	assert.Equal(t, int64(300), g.Tick())
}

func TestUnknownObjectIsAnError(t *testing.T) {
	scene := &config.Scene{Objects: []config.ObjectSpec{{Name: "NoSuchThing"}}}
	_, err := NewGameWithOptions(Options{Scene: scene})
	assert.ErrorContains(t, err, "NoSuchThing")
}

func TestBadRailIsAnError(t *testing.T) {
	scene := &config.Scene{Rails: []config.RailSpec{{Name: "r", Points: [][3]float64{{0, 0, 0}}}}}
	_, err := NewGameWithOptions(Options{Scene: scene})
	assert.Error(t, err)
}

func TestRegistrationOrderAndParts(t *testing.T) {
	g := emptyGame(t)

	parent := newProp("Parent", r3.Vec{})
	child := newProp("Child", r3.Vec{})
	grandchild := newProp("Grandchild", r3.Vec{})
	child.AddPart(grandchild)
	parent.AddPart(child)
	g.registerBuilt(parent)

	hosts := g.Actors()
	require.Len(t, hosts, 3)
	assert.Same(t, parent, hosts[0])
	assert.Same(t, child, hosts[1])
	assert.Same(t, grandchild, hosts[2])

	reg, ok := g.RegistrationOf(child.ID)
	require.True(t, ok)
	assert.Equal(t, parent.ID, reg.Parent)
	reg, _ = g.RegistrationOf(grandchild.ID)
	assert.Equal(t, child.ID, reg.Parent)

	assert.Equal(t, actor.Host(child), child.Self())
	assert.NotEqual(t, parent.ID, child.ID)
}

func TestRegisterSkipsHostsSeenTwice(t *testing.T) {
	g := emptyGame(t)
	shared := newProp("Shared", r3.Vec{})
	a := newProp("A", r3.Vec{})
	b := newProp("B", r3.Vec{})
	a.AddPart(shared)
	b.AddPart(shared)

	g.registerBuilt(a)
	g.registerBuilt(b)
	assert.Len(t, g.Actors(), 3)
}

func TestQueuedHostsFollowTheirBuilder(t *testing.T) {
	g := emptyGame(t)
	root := newProp("Root", r3.Vec{})
	member := newProp("Member", r3.Vec{})
	holder := newProp("Holder", r3.Vec{})

	build := func() actor.Host {
		g.env.Register(member)
		return holder
	}
	first := g.env.Shared("holder", build)
	second := g.env.Shared("holder", build)
	assert.Same(t, first, second)

	g.registerBuilt(root)
	hosts := g.Actors()
	require.Len(t, hosts, 3)
	assert.Same(t, root, hosts[0])
	assert.Same(t, member, hosts[1])
	assert.Same(t, holder, hosts[2])
}

func TestPanickingActorIsIsolated(t *testing.T) {
	g := emptyGame(t)
	b := &bomb{Actor: actor.NewActor(components.NewPlacementAt("Bomb", r3.Vec{}))}
	p := newProp("Bystander", r3.Vec{})
	g.registerBuilt(b)
	g.registerBuilt(p)

	g.Update()
	g.Update()

	assert.True(t, b.Dead)
	assert.Equal(t, 2, p.moves)
}

// clock records the frames it is stepped with.
type clock struct {
	prop
	deltas []float64
	total  float64
}

func (c *clock) Movement(f *actor.Frame) {
	c.deltas = append(c.deltas, f.DeltaFrames)
	c.total = f.TotalFrames
}

func TestUpdateDeltaStepsVariableFrames(t *testing.T) {
	g := emptyGame(t)
	c := &clock{prop: *newProp("Clock", r3.Vec{})}
	c.Velocity = r3.Vec{X: 2}
	g.registerBuilt(c)

	g.UpdateDelta(0.5)
	g.UpdateDelta(2)
	g.UpdateDelta(0)

	assert.Equal(t, []float64{0.5, 2, 1}, c.deltas)
	assert.InDelta(t, 3.5, c.total, 1e-12)
	assert.InDelta(t, 7, c.Translation.X, 1e-12)
	assert.Equal(t, int64(3), g.Tick())
}

func TestDeadActorsAreSkipped(t *testing.T) {
	g := emptyGame(t)
	p := newProp("Sleeper", r3.Vec{})
	p.Velocity = r3.Vec{X: 1}
	p.MakeActorDead()
	g.registerBuilt(p)

	g.Update()
	assert.Zero(t, p.moves)
	assert.Zero(t, p.Translation.X)
}

func TestSensorContactsReachAttackers(t *testing.T) {
	g := emptyGame(t)
	a := &attacker{prop: *newProp("Attacker", r3.Vec{})}
	near := newProp("Near", r3.Vec{X: 50})
	far := newProp("Far", r3.Vec{X: 5000})
	actor.AddSensor(a, "body", actor.SensorNPC, 40, r3.Vec{})
	actor.AddSensor(near, "body", actor.SensorNPC, 40, r3.Vec{})
	actor.AddSensor(far, "body", actor.SensorNPC, 40, r3.Vec{})
	g.registerBuilt(a)
	g.registerBuilt(near)
	g.registerBuilt(far)

	g.Update()
	assert.Equal(t, []string{"Near"}, a.hits)
}

func TestStatsWindowCallback(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Telemetry.StatsWindow = 10

	var windows []telemetry.WindowStats
	g, err := NewGameWithOptions(Options{
		Config:        cfg,
		Scene:         &config.Scene{},
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})
	require.NoError(t, err)
	defer g.Unload()

	p := newProp("Prop", r3.Vec{})
	g.registerBuilt(p)
	for i := 0; i < 30; i++ {
		g.Update()
	}
	require.Len(t, windows, 3)
	assert.Equal(t, int64(10), windows[0].WindowEndTick)
	assert.Equal(t, 1, windows[2].Alive)
}

func TestDeathIsRecordedAsEvent(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Telemetry.StatsWindow = 5

	var windows []telemetry.WindowStats
	g, err := NewGameWithOptions(Options{
		Config:        cfg,
		Scene:         &config.Scene{},
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})
	require.NoError(t, err)
	defer g.Unload()

	b := &bomb{Actor: actor.NewActor(components.NewPlacementAt("Bomb", r3.Vec{}))}
	g.registerBuilt(b)
	for i := 0; i < 5; i++ {
		g.Update()
	}
	require.Len(t, windows, 1)
	assert.Equal(t, 1, windows[0].Deaths)
	assert.Equal(t, 1, windows[0].Dead)
}

func TestOutputFiles(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGameWithOptions(Options{Scene: &config.Scene{}, OutputDir: dir})
	require.NoError(t, err)

	g.registerBuilt(newProp("Prop", r3.Vec{}))
	for i := 0; i < 120; i++ {
		g.Update()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "stats.csv", "events.csv", "trace.csv", "perf.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	trace, err := os.ReadFile(filepath.Join(dir, "trace.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(trace), "Prop")
}

func TestSnapshotListsActors(t *testing.T) {
	g := emptyGame(t)
	p := newProp("Prop", r3.Vec{X: 1, Y: 2, Z: 3})
	g.registerBuilt(p)

	s := g.Snapshot("test")
	require.Len(t, s.Actors, 1)
	assert.Equal(t, "Prop", s.Actors[0].Name)
	assert.Equal(t, [3]float64{1, 2, 3}, s.Actors[0].Pos)
	assert.NotNil(t, s.Actors[0].Lifetime)
}
