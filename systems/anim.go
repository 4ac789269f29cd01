package systems

import (
	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/geom"
)

// animState is one channel's playback.
type animState struct {
	name    string
	frames  float64
	loop    bool
	frame   float64
	rate    float64
	blend   float64 // interpolation frames requested at start
	active  bool
	stopped bool
}

// AnimPlayer is a headless model: it plays the animation tables from the
// asset config on five independent channels and exposes identity-posed joints.
type AnimPlayer struct {
	name          string
	tables        [actor.NumChannels]map[string]config.AnimAsset
	channels      [actor.NumChannels]animState
	defaultFrames float64

	joints   []geom.Mtx
	jointIdx map[string]int
	colors   map[int]uint32
}

// NewAnimPlayer builds a player for one model asset. Animations missing from
// the tables play once over defaultFrames.
func NewAnimPlayer(asset config.ModelAsset, defaultFrames float64) *AnimPlayer {
	p := &AnimPlayer{
		name:          asset.Name,
		defaultFrames: defaultFrames,
		jointIdx:      make(map[string]int, len(asset.Joints)),
		colors:        make(map[int]uint32),
	}
	for i := range p.tables {
		p.tables[i] = make(map[string]config.AnimAsset)
	}
	for _, a := range asset.Anims {
		ch, ok := actor.ParseAnimChannel(a.Channel)
		if !ok {
			panic("systems: model " + asset.Name + " has animation " + a.Name + " on unknown channel " + a.Channel)
		}
		p.tables[ch][a.Name] = a
	}

	joints := asset.Joints
	if len(joints) == 0 {
		joints = []string{asset.Name}
	}
	p.joints = make([]geom.Mtx, len(joints))
	for i, j := range joints {
		p.joints[i] = geom.Identity()
		p.jointIdx[j] = i
	}
	return p
}

// Name returns the model archive name.
func (p *AnimPlayer) Name() string { return p.name }

func (p *AnimPlayer) Start(ch actor.AnimChannel, name string) {
	p.StartInterpole(ch, name, 0)
}

func (p *AnimPlayer) StartInterpole(ch actor.AnimChannel, name string, blendFrames float64) {
	a, ok := p.tables[ch][name]
	if !ok {
		a = config.AnimAsset{Name: name, Frames: p.defaultFrames}
	}
	p.channels[ch] = animState{
		name:   name,
		frames: a.Frames,
		loop:   a.Loop,
		rate:   1,
		blend:  blendFrames,
		active: true,
	}
}

func (p *AnimPlayer) IsExist(ch actor.AnimChannel, name string) bool {
	_, ok := p.tables[ch][name]
	return ok
}

// IsStopped reports true for a channel that was never started.
func (p *AnimPlayer) IsStopped(ch actor.AnimChannel) bool {
	s := &p.channels[ch]
	return !s.active || s.stopped
}

func (p *AnimPlayer) IsPlaying(ch actor.AnimChannel, name string) bool {
	s := &p.channels[ch]
	return s.active && !s.stopped && s.name == name
}

func (p *AnimPlayer) IsOneTimeAndStopped(ch actor.AnimChannel) bool {
	s := &p.channels[ch]
	return s.active && !s.loop && s.stopped
}

func (p *AnimPlayer) FrameMax(ch actor.AnimChannel) float64 {
	return p.channels[ch].frames
}

// Frame returns the current frame on ch.
func (p *AnimPlayer) Frame(ch actor.AnimChannel) float64 {
	return p.channels[ch].frame
}

// Current returns the animation playing on ch.
func (p *AnimPlayer) Current(ch actor.AnimChannel) string {
	return p.channels[ch].name
}

// Rate returns the playback rate on ch.
func (p *AnimPlayer) Rate(ch actor.AnimChannel) float64 {
	return p.channels[ch].rate
}

func (p *AnimPlayer) SetFrameAndStop(ch actor.AnimChannel, frame float64) {
	s := &p.channels[ch]
	s.frame = frame
	s.stopped = true
}

func (p *AnimPlayer) SetFrameAtRandom(ch actor.AnimChannel) {
	s := &p.channels[ch]
	s.frame = geom.RandomFloat(0, s.frames)
}

func (p *AnimPlayer) SetRate(ch actor.AnimChannel, rate float64) {
	p.channels[ch].rate = rate
}

// SetLoop overrides the table's loop mode for the animation playing on ch.
func (p *AnimPlayer) SetLoop(ch actor.AnimChannel, loop bool) {
	p.channels[ch].loop = loop
}

func (p *AnimPlayer) TryStartAllAnim(name string) bool {
	started := false
	for ch := actor.AnimChannel(0); ch < actor.NumChannels; ch++ {
		if p.IsExist(ch, name) {
			p.Start(ch, name)
			started = true
		}
	}
	return started
}

// StartAction starts every channel that has name, falling back to a bck of
// the default length.
func (p *AnimPlayer) StartAction(name string) {
	if !p.TryStartAllAnim(name) {
		p.Start(actor.Bck, name)
	}
}

func (p *AnimPlayer) SetColorOverride(slot int, rgba uint32) {
	p.colors[slot] = rgba
}

// ColorOverride returns the colour set for slot.
func (p *AnimPlayer) ColorOverride(slot int) (uint32, bool) {
	c, ok := p.colors[slot]
	return c, ok
}

func (p *AnimPlayer) JointCount() int { return len(p.joints) }

func (p *AnimPlayer) JointMtx(i int) *geom.Mtx { return &p.joints[i] }

func (p *AnimPlayer) JointMtxByName(name string) *geom.Mtx {
	i, ok := p.jointIdx[name]
	if !ok {
		return nil
	}
	return &p.joints[i]
}

// Advance moves every playing channel forward. One-shot animations stop on
// their last frame; loops wrap.
func (p *AnimPlayer) Advance(deltaFrames float64) {
	for i := range p.channels {
		s := &p.channels[i]
		if !s.active || s.stopped {
			continue
		}
		if s.frames <= 0 {
			s.stopped = true
			continue
		}
		s.frame += s.rate * deltaFrames
		if s.frame < s.frames {
			continue
		}
		if s.loop {
			s.frame = geom.Wrap(s.frame, s.frames)
		} else {
			s.frame = s.frames
			s.stopped = true
		}
	}
}

// UpdateJoints poses every joint at base. Joints carry no local animation.
func (p *AnimPlayer) UpdateJoints(base geom.Mtx) {
	for i := range p.joints {
		p.joints[i] = base
	}
}
