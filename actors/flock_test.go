package actors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/geom"
)

func assertOrthonormal(t *testing.T, m geom.Mtx, tol float64) {
	t.Helper()
	x, y, z := m.Axes()
	assert.InDelta(t, 1, r3.Norm(x), tol, "|x|")
	assert.InDelta(t, 1, r3.Norm(y), tol, "|y|")
	assert.InDelta(t, 1, r3.Norm(z), tol, "|z|")
	assert.InDelta(t, 0, r3.Dot(x, y), tol, "x.y")
	assert.InDelta(t, 0, r3.Dot(y, z), tol, "y.z")
	assert.InDelta(t, 0, r3.Dot(z, x), tol, "z.x")
}

func TestFishGroupUnknownName(t *testing.T) {
	env := newTestEnv()
	env.addRail(t, "stream", true, r3.Vec{}, r3.Vec{X: 1000}, r3.Vec{X: 1000, Z: 1000})

	assert.PanicsWithValue(t, `actors: unknown fish group "FishGroupZ"`, func() {
		NewFishGroup(env, railPlacement("FishGroupZ", "stream", r3.Vec{}))
	})
	p := placement("FishGroupZ", r3.Vec{})
	assert.Panics(t, func() { RequestFishGroupArchives(env, &p) })
}

func TestFishGroupNeedsRail(t *testing.T) {
	env := newTestEnv()
	assert.Panics(t, func() {
		NewFishGroup(env, railPlacement("FishGroupA", "missing", r3.Vec{}))
	})
}

func TestFishSchoolFollowsGroup(t *testing.T) {
	geom.Seed(3)
	env := newTestEnv()
	env.addRail(t, "stream", true, r3.Vec{}, r3.Vec{X: 1000}, r3.Vec{X: 1000, Z: 1000})

	g := NewFishGroup(env, railPlacement("FishGroupC", "stream", r3.Vec{}, 6))
	require.Len(t, g.Fish, 6)
	assert.Len(t, g.Parts, 6)
	for _, f := range g.Fish {
		assert.Equal(t, "FishC", f.ObjName())
	}

	start := g.Rail.Coord()
	run(g, 300, nil)
	assert.InDelta(t, start+300*fishGroupRailSpeed, g.Rail.Coord(), 1e-6)

	for _, f := range g.Fish {
		assertOrthonormal(t, f.BaseMtx, 1e-6)
		assert.False(t, math.IsNaN(f.Translation.X))
		assert.Equal(t, f.Translation, f.BaseMtx.T)
	}
}

func TestSeaGullGroupPoints(t *testing.T) {
	env := newTestEnv()
	env.addRail(t, "sky", false, r3.Vec{}, r3.Vec{X: 1200})

	g := NewSeaGullGroup(env, railPlacement("SeaGullGroup", "sky", r3.Vec{}, 4))
	require.Len(t, g.Points, 3)
	assertVecNear(t, r3.Vec{}, g.Points[0], 1e-9)
	assertVecNear(t, r3.Vec{X: 400}, g.Points[1], 1e-9)
	assertVecNear(t, r3.Vec{X: 800}, g.Points[2], 1e-9)
	assert.Len(t, g.SeaGulls, 4)

	assert.Equal(t, 0, g.UpdatePosInfoIndex(2, false))
	assert.Equal(t, 2, g.UpdatePosInfoIndex(0, true))
	assert.Equal(t, 1, g.UpdatePosInfoIndex(0, false))
}

func TestSeaGullFrameStaysOrthonormal(t *testing.T) {
	geom.Seed(11)
	env := newTestEnv()
	env.addRail(t, "sky", true,
		r3.Vec{Y: 1000}, r3.Vec{X: 2000, Y: 1000}, r3.Vec{X: 2000, Y: 1000, Z: 2000})

	g := NewSeaGullGroup(env, railPlacement("SeaGullGroup", "sky", r3.Vec{}, 5))
	run(g, 600, nil)

	for _, s := range g.SeaGulls {
		assertOrthonormal(t, s.BaseMtx, 1e-6)
		assert.LessOrEqual(t, r3.Norm(s.Velocity), seaGullMaxSpeed+1e-9)
		assert.GreaterOrEqual(t, s.ChaseIndex, 0)
		assert.Less(t, s.ChaseIndex, len(g.Points))
		assert.LessOrEqual(t, math.Abs(s.Bank), float64(seaGullMaxBank))
	}
}
