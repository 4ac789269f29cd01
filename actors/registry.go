package actors

import (
	"sort"

	"github.com/pthm-cable/mapactors/actor"
	"github.com/pthm-cable/mapactors/components"
)

// Constructor builds an actor from its placement.
type Constructor func(env actor.Env, p components.Placement) actor.Host

// ArchiveRequest declares the archives an actor will load, ahead of
// construction.
type ArchiveRequest func(env actor.Env, p *components.Placement)

// Entry is one row of the factory table.
type Entry struct {
	New             Constructor
	RequestArchives ArchiveRequest
}

func entry[T actor.Host](ctor func(actor.Env, components.Placement) T, req ArchiveRequest) Entry {
	return Entry{
		New:             func(env actor.Env, p components.Placement) actor.Host { return ctor(env, p) },
		RequestArchives: req,
	}
}

func requestPlanet(suffixes ...string) ArchiveRequest {
	return func(env actor.Env, p *components.Placement) {
		env.Archives().RequestObjectData(p.Name)
		for _, s := range suffixes {
			if n := p.Name + s; env.Archives().IsObjectDataExist(n) {
				env.Archives().RequestObjectData(n)
			}
		}
	}
}

var factory = map[string]Entry{
	// Map objects.
	"SimpleMapObj":               entry(NewSimpleMapObj, requestObjName),
	"SimpleEnvironmentObj":       entry(NewSimpleEnvironmentObj, requestObjName),
	"CollapsePlane":              entry(NewCollapsePlane, requestObjName),
	"RotateMoveObj":              entry(NewRotateMoveObj, requestObjName),
	"RailMoveObj":                entry(NewRailMoveObj, requestObjName),
	"AstroDomeEntrance":          entry(NewAstroMapObj, RequestAstroMapObjArchives),
	"AstroStarPlate":             entry(NewAstroMapObj, RequestAstroMapObjArchives),
	"AstroRotateStepA":           entry(NewAstroMapObj, RequestAstroMapObjArchives),
	"AstroRotateStepB":           entry(NewAstroMapObj, RequestAstroMapObjArchives),
	"AstroDecoratePartsA":        entry(NewAstroMapObj, RequestAstroMapObjArchives),
	"AstroDomeEntranceKitchen":   entry(NewAstroMapObj, RequestAstroMapObjArchives),
	"AstroCore":                  entry(NewAstroCore, requestObjName),
	"UFOKinokoUnderConstruction": entry(NewUFOKinokoUnderConstruction, requestNamed("UFOKinokoLandingAstro")),
	"OceanPierFloaterA":          entry(NewOceanWaveFloater, requestObjName),
	"OceanHexagonFloater":        entry(NewOceanWaveFloater, requestObjName),
	"WoodBox":                    entry(NewWoodBox, requestNamed("WoodBox")),
	"SurprisedGalaxy":            entry(NewSurprisedGalaxy, requestNamed("MiniSurprisedGalaxy")),
	"CrystalCageS":               entry(NewCrystalCage, requestObjName),
	"CrystalCageM":               entry(NewCrystalCage, requestObjName),
	"CrystalCageL":               entry(NewCrystalCage, requestObjName),
	"SuperSpinDriverYellow":      entry(NewSuperSpinDriver, requestNamed("SuperSpinDriver")),
	"SuperSpinDriverGreen":       entry(NewSuperSpinDriver, requestNamed("SuperSpinDriver")),
	"SuperSpinDriverPink":        entry(NewSuperSpinDriver, requestNamed("SuperSpinDriver")),
	"TreasureBoxCracked":         entry(NewTreasureBox, RequestTreasureBoxArchives),
	"TreasureBoxGold":            entry(NewTreasureBox, RequestTreasureBoxArchives),
	"TreasureBox":                entry(NewTreasureBox, RequestTreasureBoxArchives),

	// Planets.
	"PlanetMap":               entry(NewPlanetMap, requestPlanet("Bloom", "Water", "Indirect")),
	"HeavenlyBeachPlanet":     entry(NewPlanetMap, requestPlanet("Bloom", "Water", "Indirect")),
	"RailPlanetMap":           entry(NewRailPlanetMap, requestPlanet("Bloom", "Water", "Indirect")),
	"PeachCastleGardenPlanet": entry(NewPeachCastleGardenPlanet, requestPlanet("Indirect")),
	"HatchWaterPlanet":        entry(NewHatchWaterPlanet, requestObjName),

	// NPCs.
	"Kinopio":      entry(NewKinopio, RequestKinopioArchives),
	"KinopioAstro": entry(NewKinopio, RequestKinopioArchives),
	"Peach":        entry(NewPeach, requestObjName),
	"Penguin":      entry(NewPenguin, requestObjName),
	"PenguinRacer": entry(NewPenguinRacer, RequestPenguinRacerArchives),
	"TicoComet":    entry(NewTicoComet, RequestTicoCometArchives),
	"Butler":       entry(NewButler, requestNamed("Butler")),
	"Rosetta":      entry(NewRosetta, requestNamed("Rosetta")),
	"Tico":         entry(NewTico, requestNamed("Tico")),
	"TicoAstro":    entry(NewTico, requestNamed("Tico")),
	"SignBoard":    entry(NewSignBoard, requestObjName),
	"TicoRail":     entry(NewTicoRail, requestNamed("Tico")),

	// Collectibles.
	"Coin":                  entry(NewCoin, RequestCoinArchives),
	"PurpleCoin":            entry(NewCoin, RequestCoinArchives),
	"RailCoin":              entry(NewRailCoin, RequestCoinArchives),
	"PurpleRailCoin":        entry(NewRailCoin, RequestCoinArchives),
	"CircleCoinGroup":       entry(NewCircleCoinGroup, RequestCoinArchives),
	"PurpleCircleCoinGroup": entry(NewCircleCoinGroup, RequestCoinArchives),
	"StarPiece":             entry(NewStarPiece, requestObjName),
	"BlueChip":              entry(NewChip, RequestChipArchives),
	"YellowChip":            entry(NewChip, RequestChipArchives),

	// Props and effects.
	"EarthenPipe":                   entry(NewEarthenPipe, RequestEarthenPipeArchives),
	"EarthenPipeInWater":            entry(NewEarthenPipe, RequestEarthenPipeArchives),
	"BlackHole":                     entry(NewBlackHole, requestBlackHole),
	"BlackHoleCube":                 entry(NewBlackHole, requestBlackHole),
	"EffectObjR500F50":              entry(NewSimpleEffectObj, requestNothing),
	"EffectObjR1000F50":             entry(NewSimpleEffectObj, requestNothing),
	"EffectObjR100F50SyncClipping":  entry(NewSimpleEffectObj, requestNothing),
	"EffectObj10x10x10SyncClipping": entry(NewSimpleEffectObj, requestNothing),
	"EffectObj20x20x10SyncClipping": entry(NewSimpleEffectObj, requestNothing),
	"EffectObj50x50x10SyncClipping": entry(NewSimpleEffectObj, requestNothing),
	"AstroEffectObj":                entry(NewSimpleEffectObj, requestNothing),
	"RandomEffectObj":               entry(NewRandomEffectObj, requestNothing),
	"Fountain":                      entry(NewEffectEmitter, requestNothing),
	"PhantomTorch":                  entry(NewEffectEmitter, requestNothing),
	"SubmarineSteam":                entry(NewEffectEmitter, requestNothing),
	"GCaptureTarget":                entry(NewGCaptureTarget, requestNamed("GCaptureTarget")),
	"AstroCountDownPlate":           entry(NewAstroCountDownPlate, requestNamed("AstroCountDownPlate")),
	"FountainBig":                   entry(NewFountainBig, requestNamed("FountainBig")),
	"ShootingStar":                  entry(NewShootingStar, requestObjName),
	"LavaSteam":                     entry(NewLavaSteam, requestNamed("LavaSteam")),
	"Air":                           entry(NewAir, requestObjName),
	"PriorDrawAir":                  entry(NewAir, requestObjName),
	"Sky":                           entry(NewSky, requestObjName),
	"PalmIsland":                    entry(NewPalmIsland, requestNamed("PalmIsland")),

	// Groups and flocks.
	"FishGroupA":           entry(NewFishGroup, RequestFishGroupArchives),
	"FishGroupB":           entry(NewFishGroup, RequestFishGroupArchives),
	"FishGroupC":           entry(NewFishGroup, RequestFishGroupArchives),
	"FishGroupD":           entry(NewFishGroup, RequestFishGroupArchives),
	"FishGroupE":           entry(NewFishGroup, RequestFishGroupArchives),
	"FishGroupF":           entry(NewFishGroup, RequestFishGroupArchives),
	"SeaGullGroup":         entry(NewSeaGullGroup, requestNamed("SeaGull")),
	"CoconutTreeLeafGroup": entry(NewCoconutTreeLeafGroup, requestNamed("CoconutTreeLeaf")),
	"AirBubbleGenerator":   entry(NewAirBubbleGenerator, requestAirBubbleGenerator),

	// Mini route.
	"MiniRoutePoint":  entry(NewMiniRoutePoint, requestNamed("MiniRoutePoint")),
	"MiniRouteGalaxy": entry(NewMiniRouteGalaxy, requestObjName),
	"MiniRoutePart":   entry(NewMiniRoutePart, RequestMiniRoutePartArchives),
}

// Lookup returns the factory entry for a placement object name.
func Lookup(name string) (Entry, bool) {
	e, ok := factory[name]
	return e, ok
}

// Names returns every known object name, sorted.
func Names() []string {
	out := make([]string, 0, len(factory))
	for n := range factory {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
