package actor

// DrawBucket is the scene list an actor is drawn from. The headless driver
// only records it; telemetry groups actors by it.
type DrawBucket uint8

const (
	BucketNone DrawBucket = iota
	BucketMapObj
	BucketMapObjStrongLight
	BucketMapObjWeakLight
	BucketNoShadowedMapObj
	BucketNoSilhouettedMapObj
	BucketEnvironment
	BucketPlanet
	BucketIndirectPlanet
	BucketNPC
	BucketIndirectNPC
	BucketItem
	BucketBloom
	BucketSky
	BucketAir
	BucketCrystal
	BucketEnemy
	numBuckets
)

var bucketNames = [numBuckets]string{
	"none",
	"map_obj",
	"map_obj_strong_light",
	"map_obj_weak_light",
	"no_shadowed_map_obj",
	"no_silhouetted_map_obj",
	"environment",
	"planet",
	"indirect_planet",
	"npc",
	"indirect_npc",
	"item",
	"bloom",
	"sky",
	"air",
	"crystal",
	"enemy",
}

func (b DrawBucket) String() string {
	if b < numBuckets {
		return bucketNames[b]
	}
	return "unknown"
}

// LightType picks the map object bucket when connecting to the scene.
type LightType uint8

const (
	LightPlanet LightType = iota
	LightStrong
	LightWeak
)
