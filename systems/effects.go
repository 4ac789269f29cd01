package systems

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/geom"
)

// MaxEmitters caps the live emitters one keeper holds. Emits past the cap
// are dropped.
const MaxEmitters = 16

// emitterFadeFrames is how long a deleted emitter keeps its slot while its
// particles die out.
const emitterFadeFrames = 30

// Emitter is one live particle emitter.
type Emitter struct {
	Name     string
	Age      float64 // frames since emitted
	Stopping bool
	Fade     float64 // frames left once stopping
}

type srtBinding struct {
	trans, rot, scale *r3.Vec
}

// EffectKeeper is the headless emitter set of one actor.
type EffectKeeper struct {
	Group string

	registered []string // nil accepts any name
	emitters   []Emitter
	hostMtx    map[string]*geom.Mtx
	hostSRT    map[string]srtBinding
	fallback   *r3.Vec
	draw       bool
	emitted    int
}

// NewEffectKeeper creates a keeper for group. registered lists the emitter
// names the group defines; nil accepts any name. pos is the owner's live
// translation, used when an emitter has no host binding.
func NewEffectKeeper(group string, registered []string, pos *r3.Vec) *EffectKeeper {
	return &EffectKeeper{
		Group:      group,
		registered: registered,
		emitters:   make([]Emitter, 0, MaxEmitters),
		hostMtx:    make(map[string]*geom.Mtx),
		hostSRT:    make(map[string]srtBinding),
		fallback:   pos,
		draw:       true,
	}
}

// Emit starts the named emitter. Emitting a live emitter restarts it.
func (k *EffectKeeper) Emit(name string) {
	if !k.IsRegistered(name) {
		return
	}
	k.emitted++
	if i := k.find(name); i >= 0 {
		k.emitters[i] = Emitter{Name: name}
		return
	}
	if len(k.emitters) >= MaxEmitters {
		return
	}
	k.emitters = append(k.emitters, Emitter{Name: name})
}

// Delete stops the named emitter; it keeps its slot until its particles fade.
func (k *EffectKeeper) Delete(name string) {
	if i := k.find(name); i >= 0 && !k.emitters[i].Stopping {
		k.emitters[i].Stopping = true
		k.emitters[i].Fade = emitterFadeFrames
	}
}

// ForceDelete removes the named emitter at once.
func (k *EffectKeeper) ForceDelete(name string) {
	if i := k.find(name); i >= 0 {
		k.emitters = slices.Delete(k.emitters, i, i+1)
	}
}

// DeleteAll stops every emitter.
func (k *EffectKeeper) DeleteAll() {
	for i := range k.emitters {
		if !k.emitters[i].Stopping {
			k.emitters[i].Stopping = true
			k.emitters[i].Fade = emitterFadeFrames
		}
	}
}

func (k *EffectKeeper) IsRegistered(name string) bool {
	return k.registered == nil || slices.Contains(k.registered, name)
}

func (k *EffectKeeper) SetHostMtx(name string, m *geom.Mtx) {
	k.hostMtx[name] = m
}

func (k *EffectKeeper) SetHostSRT(name string, trans, rot, scale *r3.Vec) {
	k.hostSRT[name] = srtBinding{trans: trans, rot: rot, scale: scale}
}

func (k *EffectKeeper) SetDrawParticle(draw bool) { k.draw = draw }

// EmitterCount returns the number of emitters the group defines.
func (k *EffectKeeper) EmitterCount() int { return len(k.registered) }

// IsDrawing reports the particle draw flag.
func (k *EffectKeeper) IsDrawing() bool { return k.draw }

// Count returns the number of live emitters, including fading ones.
func (k *EffectKeeper) Count() int { return len(k.emitters) }

// Emitted returns the number of accepted Emit calls so far.
func (k *EffectKeeper) Emitted() int { return k.emitted }

// IsAlive reports whether the named emitter is live and not stopping.
func (k *EffectKeeper) IsAlive(name string) bool {
	i := k.find(name)
	return i >= 0 && !k.emitters[i].Stopping
}

// Emitters returns the live emitters.
func (k *EffectKeeper) Emitters() []Emitter { return k.emitters }

// Pos returns where the named emitter is drawn: its host matrix, its bound
// translation, or the owner's position.
func (k *EffectKeeper) Pos(name string) r3.Vec {
	if m, ok := k.hostMtx[name]; ok && m != nil {
		return m.T
	}
	if b, ok := k.hostSRT[name]; ok && b.trans != nil {
		return *b.trans
	}
	if k.fallback != nil {
		return *k.fallback
	}
	return r3.Vec{}
}

// Scale returns the bound scale of the named emitter, or unit scale.
func (k *EffectKeeper) Scale(name string) r3.Vec {
	if b, ok := k.hostSRT[name]; ok && b.scale != nil {
		return *b.scale
	}
	return r3.Vec{X: 1, Y: 1, Z: 1}
}

// Update ages emitters and drops the ones that finished fading.
func (k *EffectKeeper) Update(deltaFrames float64) {
	alive := 0
	for i := range k.emitters {
		e := &k.emitters[i]
		e.Age += deltaFrames
		if e.Stopping {
			e.Fade -= deltaFrames
			if e.Fade <= 0 {
				continue
			}
		}
		k.emitters[alive] = k.emitters[i]
		alive++
	}
	k.emitters = k.emitters[:alive]
}

func (k *EffectKeeper) find(name string) int {
	for i := range k.emitters {
		if k.emitters[i].Name == name {
			return i
		}
	}
	return -1
}
