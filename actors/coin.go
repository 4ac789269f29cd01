package actors

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
)

// coinSpinDegrees is the coin turn per frame of scene time.
const coinSpinDegrees = 4

// bubbleOffset is where a coin's air bubble sits.
var bubbleOffset = r3.Vec{Y: 70}

// needsBubble reports whether the placement asks for an air bubble (arg7).
func needsBubble(p *components.Placement) bool { return p.ArgBool(7) }

// newBubblePart hangs a looping air bubble off a.
func newBubblePart(env actor.Env, a *actor.Actor, local r3.Vec) *actor.PartsModel {
	b := actor.NewPartsModel(env, a, "AirBubble", "AirBubble", actor.BucketNoSilhouettedMapObj)
	b.InitFixedPositionRelative(local)
	b.TryStartAllAnim("Move")
	return b
}

// Coin spins in place, optionally inside an air bubble.
type Coin struct {
	actor.Actor
	Purple    bool
	AirBubble *actor.PartsModel
}

func NewCoin(env actor.Env, p components.Placement) *Coin {
	return newCoin(env, p, strings.HasPrefix(p.Name, "Purple"))
}

func newCoin(env actor.Env, p components.Placement, purple bool) *Coin {
	c := &Coin{Actor: actor.NewActor(p), Purple: purple}
	c.InitDefaultPos()
	useModel(env, &c.Actor, coinModel(purple))
	c.ConnectToScene(actor.BucketItem)
	c.InitLightCtrl()
	if needsBubble(&p) {
		c.AirBubble = newBubblePart(env, &c.Actor, bubbleOffset)
	}
	c.TryStartAllAnim("Move")
	return c
}

func coinModel(purple bool) string {
	if purple {
		return "PurpleCoin"
	}
	return "Coin"
}

func (c *Coin) Movement(*actor.Frame) {}

// CalcAndSetBaseMtx spins the coin with scene time, so every coin turns in
// step.
func (c *Coin) CalcAndSetBaseMtx(f *actor.Frame) {
	c.CalcDefaultMtx()
	c.BaseMtx = geom.Mul(c.BaseMtx, geom.RotateY(f.TotalFrames*coinSpinDegrees*geom.DegToRad))
}

func RequestCoinArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData(coinModel(strings.HasPrefix(p.Name, "Purple")))
	if needsBubble(p) {
		env.Archives().RequestObjectData("AirBubble")
	}
}

// coinPlacer positions the coins of a group.
type coinPlacer interface {
	place(g *CoinGroup)
}

// CoinGroup spawns arg0 coins from its own placement, lays them out and
// then dies. The coins live on as independent actors.
type CoinGroup struct {
	actor.Actor
	Coins []*Coin
}

func newCoinGroup(env actor.Env, p components.Placement, placer coinPlacer) *CoinGroup {
	g := &CoinGroup{Actor: actor.NewActor(p)}
	purple := strings.HasPrefix(p.Name, "Purple")
	count := p.ArgInt(0, 0)
	g.Coins = make([]*Coin, 0, max(count, 0))
	for i := 0; i < count; i++ {
		c := newCoin(env, p, purple)
		c.Scale = r3.Vec{X: 1, Y: 1, Z: 1}
		g.Coins = append(g.Coins, c)
		env.Register(c)
	}

	g.InitDefaultPos()
	placer.place(g)

	g.ConnectToScene(actor.BucketNone)
	g.MakeActorDead()
	return g
}

func (g *CoinGroup) Movement(*actor.Frame) {}

type railCoinPlacer struct {
	env actor.Env
}

// place spaces the coins evenly from the rail start. A loop leaves a gap the
// size of one spacing before the start; an open rail ends on its last point.
func (r railCoinPlacer) place(g *CoinGroup) {
	g.InitRailRider(r.env)
	n := len(g.Coins)
	var speed float64
	switch {
	case n < 2:
		speed = 0
	case g.Rail.IsLoop():
		speed = g.Rail.TotalLength() / float64(n)
	default:
		speed = g.Rail.TotalLength() / float64(n-1)
	}
	g.Rail.SetCoord(0)
	g.Rail.SetSpeed(speed)
	for _, c := range g.Coins {
		c.Translation = g.Rail.CurrentPos
		g.Rail.Move()
	}
}

// NewRailCoin lays coins along the group's rail. PurpleRailCoin is the same
// with purple coins.
func NewRailCoin(env actor.Env, p components.Placement) *CoinGroup {
	return newCoinGroup(env, p, railCoinPlacer{env: env})
}

type circleCoinPlacer struct {
	radius float64
}

// place rings the coins in the group's local XZ plane.
func (c circleCoinPlacer) place(g *CoinGroup) {
	x, _, z := g.Axes()
	n := float64(len(g.Coins))
	for i, coin := range g.Coins {
		theta := float64(i) / n * geom.Tau
		off := r3.Add(r3.Scale(c.radius*math.Cos(theta), x), r3.Scale(c.radius*math.Sin(theta), z))
		coin.Translation = r3.Add(g.Translation, off)
	}
}

// NewCircleCoinGroup rings coins around the group at radius arg2 (default 200).
func NewCircleCoinGroup(env actor.Env, p components.Placement) *CoinGroup {
	return newCoinGroup(env, p, circleCoinPlacer{radius: p.ArgOr(2, 200)})
}

// starPieceColors are RGBA8 material colours.
var starPieceColors = [...]uint32{
	0x7F7F00FF,
	0x800099FF,
	0xE7A000FF,
	0x46A108FF,
	0x375AA0FF,
	0xBE330BFF,
	0x808080FF,
}

const starPieceSpinDegrees = 15

// StarPiece is a spinning, coloured shard.
type StarPiece struct {
	actor.Actor
	ColorIndex int
}

func NewStarPiece(env actor.Env, p components.Placement) *StarPiece {
	s := &StarPiece{Actor: actor.NewActor(p)}
	s.InitDefaultPos()
	s.InitModel(env, s.ObjName())
	s.ConnectToScene(actor.BucketNoSilhouettedMapObj)

	s.ColorIndex = p.ArgInt(3, components.Unset)
	if s.ColorIndex < 0 || s.ColorIndex > 5 {
		s.ColorIndex = geom.RandomInt(1, len(starPieceColors))
	}
	s.SetColorOverride(0, starPieceColors[s.ColorIndex])
	s.StartAndStopAt(actor.Btk, "Gift", 5)
	return s
}

func (s *StarPiece) Movement(*actor.Frame) {}

func (s *StarPiece) CalcAndSetBaseMtx(f *actor.Frame) {
	s.Rotation.Y = geom.Wrap(s.Rotation.Y+f.DeltaFrames*starPieceSpinDegrees*geom.DegToRad, geom.Tau)
	s.CalcDefaultMtx()
}

// Chip is a BlueChip or YellowChip collectible.
type Chip struct {
	actor.Actor
	AirBubble *actor.PartsModel
}

func NewChip(env actor.Env, p components.Placement) *Chip {
	c := &Chip{Actor: actor.NewActor(p)}
	c.InitDefaultPos()
	c.InitModel(env, c.ObjName())
	c.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	c.InitEffectKeeper(env, "")
	c.TryStartAllAnim("Wait")
	if needsBubble(&p) {
		c.AirBubble = newBubblePart(env, &c.Actor, r3.Vec{})
	}
	return c
}

func (c *Chip) Movement(*actor.Frame) {}

func RequestChipArchives(env actor.Env, p *components.Placement) {
	requestObjName(env, p)
	if needsBubble(p) {
		env.Archives().RequestObjectData("AirBubble")
	}
}
