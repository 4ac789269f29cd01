package actors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/systems"
)

func TestAstroModelName(t *testing.T) {
	tests := []struct {
		obj  string
		dome int
		want string
	}{
		{"AstroDomeEntrance", 1, "AstroDomeEntranceObservatory"},
		{"AstroDomeEntrance", 3, "AstroDomeEntranceKitchen"},
		{"AstroStarPlate", 6, "AstroStarPlateTower"},
		{"AstroCore", components.Unset, "AstroCore"},
		{"AstroRotateStepA", 9, "AstroRotateStepA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, astroModelName(tt.obj, tt.dome), "%s/%d", tt.obj, tt.dome)
	}

	assert.PanicsWithValue(t, "actors: AstroDomeEntrance needs a dome id in 1..6, got 0", func() {
		astroModelName("AstroDomeEntrance", 0)
	})
	assert.Panics(t, func() { astroModelName("AstroStarPlate", 7) })
}

func TestAstroMapObjRequestsDomeModel(t *testing.T) {
	env := newTestEnv()
	p := placement("AstroDomeEntrance", r3.Vec{}, 3)
	RequestAstroMapObjArchives(env, &p)
	assert.Contains(t, env.archives.Requested(), "AstroDomeEntranceKitchen")

	o := NewAstroMapObj(env, p)
	assert.Equal(t, "AstroDomeEntranceKitchen", o.ObjName())
	require.NotNil(t, o.Model)
}

func TestOceanWaveFloaterBobsInPlace(t *testing.T) {
	env := newTestEnv()
	o := NewOceanWaveFloater(env, placement("OceanPierFloaterA", r3.Vec{X: 10}))
	o.BaseMtx.T = o.Translation

	run(o, 1, nil)
	assert.True(t, o.IsRippling())
	keeper, ok := o.Effects.(*systems.EffectKeeper)
	require.True(t, ok)
	assert.True(t, keeper.IsAlive("Ripple"))

	for i := 0; i < 300; i++ {
		run(o, 1, nil)
		require.Equal(t, r3.Vec{X: 10}, o.Translation)
		drop := r3.Sub(o.BaseMtx.T, o.Translation)
		assert.InDelta(t, 0, drop.X, 1e-9)
		assert.InDelta(t, 0, drop.Z, 1e-9)
		assert.LessOrEqual(t, math.Abs(drop.Y), 30.0+1e-9)
	}
	assert.True(t, o.IsRippling(), "the bob never sinks past the stop depth")
}

func TestOceanWaveFloaterUnknownName(t *testing.T) {
	env := newTestEnv()
	assert.Panics(t, func() {
		NewOceanWaveFloater(env, placement("OceanRaft", r3.Vec{}))
	})
}

func TestWaveFloatingForceStaysInAmplitude(t *testing.T) {
	w := NewWaveFloatingForce(300, 30)
	for i := 0; i < 600; i++ {
		w.Update(1)
		assert.LessOrEqual(t, math.Abs(w.Value()), 30.0)
	}
}

func woodBox(args ...float64) components.Placement {
	p := placement("RotateMoveObj", r3.Vec{X: 5}, args...)
	p.ModelName = "WoodBox"
	return p
}

func TestRotateMoveObjColourFrameDoesNotGateRotation(t *testing.T) {
	env := newTestEnv()
	o := NewRotateMoveObj(env, woodBox(3, 900))
	require.NotNil(t, o.Rotator)
	anim, ok := o.Model.(*systems.AnimPlayer)
	require.True(t, ok)
	assert.Equal(t, "ColorChange", anim.Current(actor.Brk))
	assert.Equal(t, 3.0, anim.Frame(actor.Brk))

	run(o, 10, nil)
	assert.True(t, o.Rotator.IsWorking())
	assert.InDelta(t, 90, o.Rotator.Angle(), 1e-9)
	assert.Equal(t, 3.0, anim.Frame(actor.Brk), "the colour frame stays pinned")
}

func TestRotateMoveObjWaitsForPlayer(t *testing.T) {
	env := newTestEnv()
	p := woodBox(0, 900)
	p.MoveConditionType = moveWaitForPlayerOn
	p.Scale = r3.Vec{X: 2, Y: 2, Z: 2}
	o := NewRotateMoveObj(env, p)

	run(o, 10, nil)
	assert.False(t, o.Rotator.IsWorking())
	assert.Zero(t, o.Rotator.Angle())
	assert.Equal(t, geom.FromSRT(p.Scale, p.Rotation, p.Translation), o.BaseMtx)
}

func TestRotatorOverridesBaseMtx(t *testing.T) {
	env := newTestEnv()
	p := woodBox(0, 900)
	p.Scale = r3.Vec{X: 2, Y: 2, Z: 2}
	o := NewRotateMoveObj(env, p)

	run(o, 10, nil)
	want := geom.Rotation(geom.AxisY, math.Pi/2)
	assertVecNear(t, want.X, o.BaseMtx.X, 1e-9)
	assertVecNear(t, want.Y, o.BaseMtx.Y, 1e-9)
	assertVecNear(t, want.Z, o.BaseMtx.Z, 1e-9)
	assert.Equal(t, r3.Vec{X: 5}, o.BaseMtx.T)
	assert.InDelta(t, 1, r3.Norm(o.BaseMtx.X), 1e-9, "the placement scale is not applied while rotating")
}

func railMoveObj(t *testing.T, env *testEnv, args ...float64) *RailMoveObj {
	t.Helper()
	env.addRail(t, "line", false, r3.Vec{}, r3.Vec{X: 100})
	p := railPlacement("RailMoveObj", "line", r3.Vec{Y: 5}, args...)
	p.Rotation = r3.Vec{Y: math.Pi / 2}
	o := NewRailMoveObj(env, p)
	o.Bind(o)
	return o
}

func TestRailMoveObjRunsToEndOfOpenRail(t *testing.T) {
	env := newTestEnv()
	o := railMoveObj(t, env)
	require.NotNil(t, o.RailMover)
	assert.Equal(t, r3.Vec{}, o.Translation, "snapped onto the rail")

	trace := traceNerves(o, 30, nil, func(frame int) {
		if frame == 5 {
			// The mover replaces the placement rotation.
			assertVecNear(t, r3.Vec{X: 1}, o.BaseMtx.X, 1e-9)
			assertVecNear(t, o.Translation, o.BaseMtx.T, 1e-9)
		}
	})
	assert.Equal(t, []transition{{0, "Move"}, {11, "Done"}}, trace)
	assert.InDelta(t, 100, o.Translation.X, 1e-9)

	anim, ok := o.Model.(*systems.AnimPlayer)
	require.True(t, ok)
	assert.Equal(t, "Move", anim.Current(actor.Bck))
	assert.True(t, anim.IsStopped(actor.Bck), "the move animation freezes at the end")

	run(o, 10, nil)
	assert.InDelta(t, 100, o.Translation.X, 1e-9)
}

func TestRailMoveObjPipeline(t *testing.T) {
	env := newTestEnv()
	o := railMoveObj(t, env)

	assert.Equal(t, "Move", o.NerveName(), "the nerve is set up before the rail")
	assert.NotNil(t, o.Effects)
	require.NotNil(t, o.Bloom)
	assert.Contains(t, o.Parts, actor.Host(o.Bloom))

	run(o, 6, nil)
	assert.Equal(t, o.BaseMtx, o.Bloom.BaseMtx, "the bloom follows the finished base matrix")
}

func TestRailMoveObjVanishesAtEnd(t *testing.T) {
	env := newTestEnv()
	o := railMoveObj(t, env, components.Unset, components.Unset, 1)

	run(o, 10, nil)
	assert.False(t, o.Dead)
	run(o, 1, nil)
	assert.True(t, o.Dead)
	assert.True(t, o.Bloom.Dead)
}

func TestRailMoveObjWaitsForPlayer(t *testing.T) {
	env := newTestEnv()
	env.addRail(t, "line", false, r3.Vec{}, r3.Vec{X: 100})
	p := railPlacement("RailMoveObj", "line", r3.Vec{})
	p.MoveConditionType = moveWaitForPlayerOn
	o := NewRailMoveObj(env, p)

	assert.Equal(t, "WaitForPlayerOn", o.NerveName())
	run(o, 20, nil)
	assert.Equal(t, r3.Vec{}, o.Translation)
	assert.False(t, o.RailMover.IsWorking())
}

func TestRailMoveObjWithoutRail(t *testing.T) {
	env := newTestEnv()
	o := NewRailMoveObj(env, placement("RailMoveObj", r3.Vec{X: 7}))
	o.Bind(o)

	assert.Nil(t, o.RailMover)
	assert.Equal(t, "Done", o.NerveName())
	run(o, 5, nil)
	assert.Equal(t, r3.Vec{X: 7}, o.Translation)
	assert.False(t, o.ReceiveMessage(actor.MsgRailMoverVanish, nil, nil), "vanish only applies while moving")
	assert.False(t, o.Dead)
}

func TestTreasureBoxGlintsOnce(t *testing.T) {
	tests := []struct {
		name   string
		effect string
	}{
		{"TreasureBoxCracked", "Light"},
		{"TreasureBoxGold", "Gold"},
	}
	for _, tt := range tests {
		env := newTestEnv()
		b := NewTreasureBox(env, placement(tt.name, r3.Vec{}))
		assert.Equal(t, tt.name, b.ObjName())
		assert.Equal(t, "Wait", b.NerveName())

		run(b, 5, nil)
		keeper, ok := b.Effects.(*systems.EffectKeeper)
		require.True(t, ok)
		assert.True(t, keeper.IsAlive(tt.effect), tt.name)
		assert.Equal(t, 1, keeper.Emitted(), tt.name)
	}

	env := newTestEnv()
	b := NewTreasureBox(env, placement("TreasureBoxCracked", r3.Vec{}))
	run(b, 1, nil)
	anim, ok := b.Model.(*systems.AnimPlayer)
	require.True(t, ok)
	assert.Equal(t, "Wait", anim.Current(actor.Brk))
}

func TestTreasureBoxAlwaysOpen(t *testing.T) {
	env := newTestEnv()
	b := NewTreasureBox(env, placement("TreasureBoxGold", r3.Vec{}, components.Unset, components.Unset, 2))
	assert.Equal(t, "AlwaysOpen", b.NerveName())

	run(b, 5, nil)
	keeper, ok := b.Effects.(*systems.EffectKeeper)
	require.True(t, ok)
	assert.Zero(t, keeper.Emitted())

	plain := NewTreasureBox(env, placement("TreasureBox", r3.Vec{}))
	run(plain, 5, nil)
	assert.Equal(t, "TreasureBox", plain.ObjName())
	assert.Zero(t, plain.Effects.(*systems.EffectKeeper).Emitted())
}
