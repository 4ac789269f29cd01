package actors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/geom"
)

// Mini route markers read their point info from the placement:
// arg0 == 1 is pink, arg1 == 1 is small (points) or arg1 is the part type
// (parts), and galaxies take the stage type from arg0 and the scale from
// arg2.

func argFlag(p *components.Placement, i int) bool { return p.ArgInt(i, 0) == 1 }

func startRouteColor(a *actor.Actor, pink bool) {
	if pink {
		a.StartBrk("TicoBuild")
	} else {
		a.StartBrk("Normal")
	}
}

// MiniRoutePoint is a stop on the world map route.
type MiniRoutePoint struct {
	actor.Actor
	Pink  bool
	Small bool
}

func NewMiniRoutePoint(env actor.Env, p components.Placement) *MiniRoutePoint {
	m := &MiniRoutePoint{Actor: actor.NewActor(p), Pink: argFlag(&p, 0), Small: argFlag(&p, 1)}
	m.InitDefaultPos()
	useModel(env, &m.Actor, "MiniRoutePoint")
	m.TryStartAllAnim("Open")
	startRouteColor(&m.Actor, m.Pink)
	if m.Small {
		m.Scale = r3.Vec{X: 0.5, Y: 1, Z: 0.5}
	}
	m.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	return m
}

func (m *MiniRoutePoint) Movement(*actor.Frame) {}

var miniRouteStageTypes = [...]string{
	"Galaxy",
	"MiniGalaxy",
	"HideGalaxy",
	"BossGalaxyLv1",
	"BossGalaxyLv2",
	"BossGalaxyLv3",
}

const miniGalaxySpinDegrees = 0.25

// MiniRouteGalaxy is a miniature galaxy turning slowly on its route point.
// The placement's model name is the miniature.
type MiniRouteGalaxy struct {
	actor.Actor
	StageType   string
	rotateSpeed float64
}

func NewMiniRouteGalaxy(env actor.Env, p components.Placement) *MiniRouteGalaxy {
	g := &MiniRouteGalaxy{Actor: actor.NewActor(p)}
	g.InitDefaultPos()
	if i := p.ArgInt(0, 0); i >= 0 && i < len(miniRouteStageTypes) {
		g.StageType = miniRouteStageTypes[i]
	} else {
		panic(fmt.Sprintf("actors: unknown mini route stage type %d", i))
	}
	s := p.ArgOr(2, 1)
	g.Scale = r3.Vec{X: s, Y: s, Z: s}

	miniature := g.ObjName()
	g.InitModel(env, miniature)
	g.InitEffectKeeper(env, "")

	if g.StageType == "BossGalaxyLv3" {
		g.Rotation.Y = -math.Pi / 4
	} else {
		g.rotateSpeed = miniGalaxySpinDegrees * geom.DegToRad
	}
	g.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	g.StartAction(miniature)
	g.EmitEffect(miniature)
	return g
}

func (g *MiniRouteGalaxy) Movement(*actor.Frame) {}

func (g *MiniRouteGalaxy) CalcAndSetBaseMtx(f *actor.Frame) {
	g.CalcDefaultMtx()
	g.BaseMtx = geom.Mul(g.BaseMtx, geom.RotateY(f.TotalFrames*g.rotateSpeed))
}

var miniRoutePartModels = map[string]string{
	"WorldWarpPoint":   "MiniWorldWarpPoint",
	"EarthenPipe":      "MiniEarthenPipe",
	"StarCheckPoint":   "MiniStarCheckPointMark",
	"TicoRouteCreator": "MiniTicoMasterMark",
	"StarPieceMine":    "MiniStarPieceMine",
}

// miniRoutePartTypes indexes the part types by arg1.
var miniRoutePartTypes = [...]string{
	"WorldWarpPoint",
	"EarthenPipe",
	"StarCheckPoint",
	"TicoRouteCreator",
	"StarPieceMine",
}

func miniRoutePartModel(p *components.Placement) string {
	i := p.ArgInt(1, components.Unset)
	if i < 0 || i >= len(miniRoutePartTypes) {
		panic(fmt.Sprintf("actors: unknown mini route part type %d", i))
	}
	return miniRoutePartModels[miniRoutePartTypes[i]]
}

// MiniRoutePart is a landmark icon on a route point.
type MiniRoutePart struct {
	actor.Actor
	Pink bool
}

func NewMiniRoutePart(env actor.Env, p components.Placement) *MiniRoutePart {
	m := &MiniRoutePart{Actor: actor.NewActor(p), Pink: argFlag(&p, 0)}
	m.InitDefaultPos()
	useModel(env, &m.Actor, miniRoutePartModel(&p))
	m.TryStartAllAnim("Open")
	startRouteColor(&m.Actor, m.Pink)
	m.InitEffectKeeper(env, "")
	m.ConnectToScene(actor.BucketNoSilhouettedMapObj)
	return m
}

func (m *MiniRoutePart) Movement(*actor.Frame) {}

func RequestMiniRoutePartArchives(env actor.Env, p *components.Placement) {
	env.Archives().RequestObjectData(miniRoutePartModel(p))
}
