package actors

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
	"github.com/pthm-cable/mapactors/nerve"
)

// NPC is a placed character. Its goods are parts, so they die and appear
// with it.
type NPC struct {
	actor.Actor
	Goods actor.Goods
}

func (n *NPC) initNPC(env actor.Env, p components.Placement, model string, bucket actor.DrawBucket) {
	n.Actor = actor.NewActor(p)
	n.InitDefaultPos()
	useModel(env, &n.Actor, model)
	n.ConnectToScene(bucket)
	n.InitLightCtrl()
}

// equip hangs goods entry index of npc's item table. A missing entry equips
// nothing.
func (n *NPC) equip(env actor.Env, npc string, index int, indirect bool) {
	item, ok := env.NPCItem(npc, index)
	if !ok {
		return
	}
	n.Goods = actor.EquipGoods(env, &n.Actor, item, indirect)
}

func (n *NPC) Movement(*actor.Frame) {}

// kinopioActions maps arg2 to the idle action.
var kinopioActions = [...]string{
	"SpinWait1",
	"SpinWait2",
	"SpinWait3",
	"Wait",
	"Wait",
	"SwimWait",
	"Pickel",
	"Sleep",
	"Wait",
	"KinopioGoodsWeapon",
	"Joy",
	"Rightened",
	"StarPieceWait",
	"Getaway",
}

type Kinopio struct {
	NPC
}

func NewKinopio(env actor.Env, p components.Placement) *Kinopio {
	k := &Kinopio{}
	k.initNPC(env, p, "Kinopio", actor.BucketNPC)
	k.Scale = r3.Vec{X: 1.2, Y: 1.2, Z: 1.2}
	k.InitEffectKeeper(env, "")

	goods := p.ArgInt(7, components.Unset)
	k.equip(env, "Kinopio", goods, false)

	switch action := p.ArgInt(2, components.Unset); {
	case action >= 0 && action < len(kinopioActions):
		k.StartAction(kinopioActions[action])
	case action == components.Unset && goods == 2:
		k.StartAction("WaitPickel")
	case action == components.Unset:
		k.StartAction("Wait")
	}
	k.SetBckFrameAtRandom()
	k.StartAndStopAt(actor.Brk, "ColorChange", p.ArgOr(1, 0))

	// Appear switches are never raised headless.
	if p.IsValidSwAppear() {
		k.MakeActorDead()
	}
	return k
}

func RequestKinopioArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData("Kinopio")
	actor.RequestGoodsArchives(env, "Kinopio", p.ArgInt(7, components.Unset))
}

type Peach struct {
	NPC
}

func NewPeach(env actor.Env, p components.Placement) *Peach {
	n := &Peach{}
	n.initNPC(env, p, p.ObjName(), actor.BucketNPC)
	n.StartAction("Help")
	return n
}

type penguinNerve uint8

const (
	penguinWait penguinNerve = iota
	penguinDive
)

func (n penguinNerve) String() string {
	if n == penguinDive {
		return "Dive"
	}
	return "Wait"
}

var penguinActions = map[int]string{
	0: "SitDown",
	1: "SwimWait",
	2: "SwimWaitSurface",
	3: "SwimWaitSurface",
	4: "SwimTurtleTalk",
}

// penguinDiver is the arg0 value of penguins that dive from the surface.
const penguinDiver = 3

// Penguin idles in place; surface swimmers dive now and then.
type Penguin struct {
	NPC
	spine       nerve.Spine[penguinNerve]
	mode        int
	diveCounter float64
}

func NewPenguin(env actor.Env, p components.Placement) *Penguin {
	n := &Penguin{}
	n.initNPC(env, p, p.ObjName(), actor.BucketNPC)
	n.InitEffectKeeper(env, "")

	if p.IsConnectedWithRail() {
		n.InitRailRider(env)
		n.MoveCoordAndTransToNearestRailPos()
	}

	n.mode = p.ArgInt(0, components.Unset)
	if action, ok := penguinActions[n.mode]; ok {
		n.StartAction(action)
	} else {
		n.StartAction("Wait")
	}
	n.SetBckFrameAtRandom()
	n.StartAndStopAt(actor.Brk, "ColorChange", p.ArgOr(7, 0))

	n.spine.Init(penguinWait)
	n.Spine = &n.spine
	return n
}

func (n *Penguin) Movement(*actor.Frame) {
	switch n.spine.Current() {
	case penguinWait:
		if n.spine.IsFirstStep() {
			n.diveCounter = float64(geom.RandomInt(120, 300))
		}
		if n.mode == penguinDiver && n.spine.IsGreaterStep(n.diveCounter) {
			n.spine.Set(penguinDive)
		}
	case penguinDive:
		if n.spine.IsFirstStep() {
			n.StartBck("SwimDive")
		}
		if n.IsBckStopped() {
			n.StartAction("SwimWaitSurface")
			n.spine.Set(penguinWait)
		}
	}
}

type PenguinRacer struct {
	NPC
}

func NewPenguinRacer(env actor.Env, p components.Placement) *PenguinRacer {
	n := &PenguinRacer{}
	n.initNPC(env, p, "Penguin", actor.BucketNPC)
	n.InitEffectKeeper(env, "")
	n.equip(env, p.Name, 0, false)
	n.StartAndStopAt(actor.Brk, "ColorChange", p.ArgOr(7, 0))
	n.StartAction("RacerWait")
	return n
}

func RequestPenguinRacerArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData("Penguin")
	actor.RequestGoodsArchives(env, p.Name, 0)
}

type TicoComet struct {
	NPC
}

func NewTicoComet(env actor.Env, p components.Placement) *TicoComet {
	n := &TicoComet{}
	n.initNPC(env, p, p.ObjName(), actor.BucketNPC)
	n.InitEffectKeeper(env, "")

	n.equip(env, "TicoComet", 0, false)
	if g := n.Goods.Goods0; g != nil {
		g.StartAction("LeftRotate")
	}
	if g := n.Goods.Goods1; g != nil {
		g.StartAction("RightRotate")
	}

	n.StartBtk("TicoComet")
	n.StartAndStopAt(actor.Brk, "Normal", 0)
	n.StartAction("Wait")
	return n
}

func RequestTicoCometArchives(env actor.Env, p *components.Placement) {
	requestObjName(env, p)
	actor.RequestGoodsArchives(env, "TicoComet", 0)
}

type Butler struct {
	NPC
}

func NewButler(env actor.Env, p components.Placement) *Butler {
	n := &Butler{}
	n.initNPC(env, p, "Butler", actor.BucketNPC)
	n.InitEffectKeeper(env, "")
	n.StartAction("Wait")
	return n
}

type Rosetta struct {
	NPC
}

func NewRosetta(env actor.Env, p components.Placement) *Rosetta {
	n := &Rosetta{}
	n.initNPC(env, p, "Rosetta", actor.BucketIndirectNPC)
	n.InitEffectKeeper(env, "")
	n.StartAction("WaitA")
	return n
}

// Tico is a standing star child. TicoAstro is built the same way.
type Tico struct {
	NPC
}

func NewTico(env actor.Env, p components.Placement) *Tico {
	n := &Tico{}
	n.initNPC(env, p, "Tico", actor.BucketIndirectNPC)
	n.InitEffectKeeper(env, "")
	if color, ok := p.Arg(0); ok {
		n.StartAndStopAt(actor.Brk, "ColorChange", color)
	}
	n.StartAction("Wait")
	n.SetBckFrameAtRandom()
	return n
}

type SignBoard struct {
	actor.Actor
}

func NewSignBoard(env actor.Env, p components.Placement) *SignBoard {
	s := &SignBoard{Actor: actor.NewActor(p)}
	s.InitDefaultPos()
	s.InitModel(env, s.ObjName())
	s.ConnectToScene(actor.BucketNPC)
	return s
}

func (s *SignBoard) Movement(*actor.Frame) {}
