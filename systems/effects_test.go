package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/geom"
)

func TestEffectKeeperRegisteredOnly(t *testing.T) {
	k := NewEffectKeeper("Tico", []string{"Glow", "Spin"}, nil)

	k.Emit("Glow")
	k.Emit("Smoke")

	assert.Equal(t, 1, k.Count())
	assert.Equal(t, 1, k.Emitted())
	assert.Equal(t, 2, k.EmitterCount())
	assert.True(t, k.IsAlive("Glow"))
	assert.False(t, k.IsAlive("Smoke"))
}

func TestEffectKeeperNilAcceptsAny(t *testing.T) {
	k := NewEffectKeeper("Any", nil, nil)
	k.Emit("Whatever")
	assert.True(t, k.IsRegistered("Whatever"))
	assert.Equal(t, 1, k.Count())
}

func TestEffectKeeperReEmitRestarts(t *testing.T) {
	k := NewEffectKeeper("Tico", nil, nil)
	k.Emit("Glow")
	k.Update(10)
	k.Emit("Glow")

	assert.Equal(t, 1, k.Count())
	assert.Equal(t, 0.0, k.Emitters()[0].Age)
}

func TestEffectKeeperDeleteFades(t *testing.T) {
	k := NewEffectKeeper("Tico", nil, nil)
	k.Emit("Glow")
	k.Delete("Glow")

	assert.False(t, k.IsAlive("Glow"))
	assert.Equal(t, 1, k.Count())

	k.Update(emitterFadeFrames - 1)
	assert.Equal(t, 1, k.Count())
	k.Update(1)
	assert.Equal(t, 0, k.Count())
}

func TestEffectKeeperForceDelete(t *testing.T) {
	k := NewEffectKeeper("Tico", nil, nil)
	k.Emit("A")
	k.Emit("B")
	k.ForceDelete("A")
	assert.Equal(t, 1, k.Count())
	assert.True(t, k.IsAlive("B"))
}

func TestEffectKeeperDeleteAll(t *testing.T) {
	k := NewEffectKeeper("Tico", nil, nil)
	k.Emit("A")
	k.Emit("B")
	k.DeleteAll()
	assert.False(t, k.IsAlive("A"))
	assert.False(t, k.IsAlive("B"))
	k.Update(emitterFadeFrames)
	assert.Equal(t, 0, k.Count())
}

func TestEffectKeeperCapacity(t *testing.T) {
	k := NewEffectKeeper("Tico", nil, nil)
	for i := 0; i < MaxEmitters+4; i++ {
		k.Emit(string(rune('a' + i)))
	}
	assert.Equal(t, MaxEmitters, k.Count())
}

func TestEffectKeeperPosBindings(t *testing.T) {
	owner := r3.Vec{X: 5}
	k := NewEffectKeeper("Tico", nil, &owner)
	assert.Equal(t, owner, k.Pos("Free"))

	m := geom.FromTR(r3.Vec{}, r3.Vec{Y: 7})
	k.SetHostMtx("Joint", &m)
	assert.Equal(t, r3.Vec{Y: 7}, k.Pos("Joint"))

	trans := r3.Vec{Z: 3}
	scale := r3.Vec{X: 2, Y: 2, Z: 2}
	k.SetHostSRT("Bound", &trans, nil, &scale)
	assert.Equal(t, trans, k.Pos("Bound"))
	assert.Equal(t, scale, k.Scale("Bound"))
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, k.Scale("Free"))

	trans.Z = 4
	assert.Equal(t, 4.0, k.Pos("Bound").Z)
}
