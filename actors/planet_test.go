package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
)

func TestPlanetMapCompanions(t *testing.T) {
	env := newTestEnv()
	p := placement("HeavenlyBeachPlanet", r3.Vec{Y: -500})
	p.Scale = r3.Vec{X: 3, Y: 3, Z: 3}
	m := NewPlanetMap(env, p)

	require.NotNil(t, m.Bloom)
	require.NotNil(t, m.Water)
	assert.Nil(t, m.Indirect, "no archive, no companion")
	assert.Equal(t, "HeavenlyBeachPlanetWater", m.Water.ObjName())
	assert.Equal(t, p.Scale, m.Bloom.Scale)
	assert.Len(t, m.Parts, 2)
	assert.Equal(t, actor.BucketPlanet, m.Bucket)
	assert.True(t, keeperOf(t, m.Effects).IsAlive("HeavenlyBeachPlanet"))

	run(m, 3, nil)
	assert.Equal(t, m.BaseMtx, m.Bloom.BaseMtx)
	assert.Equal(t, r3.Vec{Y: -500}, m.Water.Translation)
}

func TestPlanetArchivesRequestOnlyExisting(t *testing.T) {
	env := newTestEnv()
	e, ok := Lookup("HeavenlyBeachPlanet")
	require.True(t, ok)
	p := placement("HeavenlyBeachPlanet", r3.Vec{})
	e.RequestArchives(env, &p)

	req := env.archives.Requested()
	assert.Contains(t, req, "HeavenlyBeachPlanet")
	assert.Contains(t, req, "HeavenlyBeachPlanetWater")
	assert.Contains(t, req, "HeavenlyBeachPlanetBloom")
	assert.NotContains(t, req, "HeavenlyBeachPlanetIndirect")
}

func TestRailPlanetMapStaysPut(t *testing.T) {
	env := newTestEnv()
	env.addRail(t, "orbit", true, r3.Vec{}, r3.Vec{X: 1000}, r3.Vec{X: 1000, Z: 1000})
	m := NewRailPlanetMap(env, railPlacement("HeavenlyBeachPlanet", "orbit", r3.Vec{X: 200, Y: 50}))
	require.NotNil(t, m.Rail)

	run(m, 30, nil)
	assert.Equal(t, r3.Vec{X: 200, Y: 50}, m.Translation)
}

func TestPeachCastleGardenPlanet(t *testing.T) {
	env := newTestEnv()
	o := NewPeachCastleGardenPlanet(env, placement("PeachCastleGardenPlanet", r3.Vec{}))

	require.NotNil(t, o.Indirect)
	assert.Equal(t, actor.BucketIndirectPlanet, o.Indirect.Bucket)
	assert.NotNil(t, o.Bloom)
	anim := animOf(t, o.Model)
	assert.Equal(t, "Before", anim.Current(actor.Bck))
	assert.Equal(t, "PeachCastleGardenPlanet", anim.Current(actor.Btk))
}

func TestHatchWaterPlanetPlaysOnce(t *testing.T) {
	env := newTestEnv()
	h := NewHatchWaterPlanet(env, placement("HatchWaterPlanet", r3.Vec{}))

	run(h, 60, nil)
	assert.False(t, h.IsBckOneTimeAndStopped())
	run(h, 60, nil)
	assert.True(t, h.IsBckOneTimeAndStopped())
	assert.Equal(t, 120.0, animOf(t, h.Model).Frame(actor.Bck))
}
