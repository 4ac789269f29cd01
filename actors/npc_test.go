package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/systems"
)

func animOf(t *testing.T, m actor.Model) *systems.AnimPlayer {
	t.Helper()
	p, ok := m.(*systems.AnimPlayer)
	require.True(t, ok, "no model")
	return p
}

func TestPenguinActions(t *testing.T) {
	tests := []struct {
		mode float64
		want string
	}{
		{0, "SitDown"},
		{1, "SwimWait"},
		{4, "SwimTurtleTalk"},
		{9, "Wait"},
	}
	for _, tt := range tests {
		env := newTestEnv()
		n := NewPenguin(env, placement("Penguin", r3.Vec{}, tt.mode))
		assert.Equal(t, tt.want, animOf(t, n.Model).Current(actor.Bck), "mode %v", tt.mode)
	}
}

func TestPenguinSitterNeverDives(t *testing.T) {
	env := newTestEnv()
	n := NewPenguin(env, placement("Penguin", r3.Vec{}, 0))
	trace := traceNerves(n, 600, nil, nil)
	assert.Equal(t, []transition{{0, "Wait"}}, trace)
}

func TestPenguinDiverCycle(t *testing.T) {
	env := newTestEnv()
	n := NewPenguin(env, placement("Penguin", r3.Vec{}, penguinDiver))
	anim := animOf(t, n.Model)

	var surfaced []string
	prev := n.NerveName()
	trace := traceNerves(n, 800, nil, func(int) {
		if cur := n.NerveName(); cur != prev {
			if prev == "Dive" {
				surfaced = append(surfaced, anim.Current(actor.Bck))
			} else {
				assert.Equal(t, "SwimWaitSurface", anim.Current(actor.Bck))
			}
			prev = cur
		}
	})

	require.GreaterOrEqual(t, len(trace), 3)
	assert.Equal(t, []string{"Wait", "Dive", "Wait"}, nerveNames(trace[:3]))
	// The first dive comes after a random 120..299 frame wait.
	assert.GreaterOrEqual(t, trace[1].frame, 122)
	assert.LessOrEqual(t, trace[1].frame, 301)
	// The dive lasts one play of the 60 frame SwimDive.
	assert.Equal(t, 61, trace[2].frame-trace[1].frame)
	require.NotEmpty(t, surfaced)
	for _, a := range surfaced {
		assert.Equal(t, "SwimWaitSurface", a)
	}
}
