package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAirBubbleHolderIsShared(t *testing.T) {
	env := newTestEnv()
	first := AirBubbleHolderOf(env)
	second := AirBubbleHolderOf(env)
	assert.Same(t, first, second)

	assert.Equal(t, airBubbleHolderCapacity, first.Bubbles.Len())
	// Every pooled bubble plus the holder itself.
	assert.Len(t, env.registered, airBubbleHolderCapacity+1)
	assert.Same(t, first, env.registered[len(env.registered)-1])
	assert.Zero(t, first.Bubbles.AliveCount())
}

func TestAirBubblePoolExhaustion(t *testing.T) {
	env := newTestEnv()
	h := AirBubbleHolderOf(env)
	for i := 0; i < airBubbleHolderCapacity; i++ {
		require.True(t, h.AppearAirBubble(r3.Vec{}, 0), "bubble %d", i)
	}
	assert.False(t, h.AppearAirBubble(r3.Vec{}, 0))
	assert.Equal(t, airBubbleHolderCapacity, h.Bubbles.AliveCount())
}

func TestAirBubbleRisesAndPops(t *testing.T) {
	env := newTestEnv()
	h := AirBubbleHolderOf(env)
	require.True(t, h.AppearAirBubble(r3.Vec{Y: 100}, 10))
	b := h.Bubbles.At(0)
	assert.Equal(t, "Move", b.NerveName())

	run(b, 5, nil)
	assert.Greater(t, b.Translation.Y, 100.0)
	assert.False(t, b.Dead)

	run(b, 10, nil)
	assert.True(t, b.Hidden)
	assert.Equal(t, "KillWait", b.NerveName())

	run(b, 100, nil)
	assert.True(t, b.Dead)

	// A popped bubble is free again.
	assert.True(t, h.AppearAirBubble(r3.Vec{}, 0))
	assert.Same(t, b, h.Bubbles.At(0))
	assert.False(t, b.Dead)
	assert.Equal(t, float64(airBubbleDefaultLifetime), b.Lifetime)
}

func TestAirBubbleGeneratorReleasesOnDelay(t *testing.T) {
	env := newTestEnv()
	g := NewAirBubbleGenerator(env, placement("AirBubbleGenerator", r3.Vec{X: 10}, 10, 60))
	holder := AirBubbleHolderOf(env)
	assert.Same(t, holder, g.holder)

	run(g, 10, nil)
	assert.Zero(t, holder.Bubbles.AliveCount())

	run(g, 20, nil)
	require.Equal(t, 1, holder.Bubbles.AliveCount())
	b := holder.Bubbles.At(0)
	assert.Equal(t, r3.Vec{X: 10, Y: 120}, b.Translation)
	assert.Equal(t, 60.0, b.Lifetime)
}
