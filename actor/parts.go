package actor

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/mapactors/components"
	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/geom"
)

// FixedPosition attaches a transform to a parent matrix plus a local offset.
// The parent matrix is read every time, never copied.
type FixedPosition struct {
	base  *geom.Mtx
	Local r3.Vec
}

// NewFixedPosition follows base.
func NewFixedPosition(base *geom.Mtx, local r3.Vec) *FixedPosition {
	return &FixedPosition{base: base, Local: local}
}

// Calc returns base × translate(local).
func (fp *FixedPosition) Calc() geom.Mtx {
	return fp.base.Translate(fp.Local)
}

// PartsModel is a sub-actor fixed to its parent's base or joint matrix.
type PartsModel struct {
	Actor
	Fixed *FixedPosition

	parent *Actor
}

// NewPartsModel builds a part for parent. It is not attached until one of the
// InitFixedPosition methods is called.
func NewPartsModel(env Env, parent *Actor, objName, modelName string, bucket DrawBucket) *PartsModel {
	p := &PartsModel{
		Actor:  NewActor(components.NewPlacementAt(objName, parent.Translation)),
		parent: parent,
	}
	p.SetObjName(modelName)
	p.InitModel(env, modelName)
	p.InitEffectKeeper(env, modelName)
	p.ConnectToScene(bucket)
	parent.AddPart(p)
	return p
}

// InitFixedPositionRelative follows the parent's base matrix.
func (p *PartsModel) InitFixedPositionRelative(local r3.Vec) {
	p.Fixed = NewFixedPosition(&p.parent.BaseMtx, local)
}

// InitFixedPositionJoint follows one of the parent's joints.
func (p *PartsModel) InitFixedPositionJoint(joint string, local r3.Vec) {
	var m *geom.Mtx
	if p.parent.Model != nil {
		m = p.parent.Model.JointMtxByName(joint)
	}
	if m == nil {
		panic(fmt.Sprintf("actor: %s has no joint %q for %s", p.parent.Name, joint, p.Name))
	}
	p.Fixed = NewFixedPosition(m, local)
}

func (p *PartsModel) Movement(*Frame) {}

func (p *PartsModel) CalcAndSetBaseMtx(*Frame) {
	if p.Fixed == nil {
		p.CalcDefaultMtx()
		return
	}
	p.BaseMtx = p.Fixed.Calc()
	p.Translation = p.BaseMtx.T
}

// CreateSubModel adds the part "<parent name><suffix>" when that archive
// exists, and returns nil otherwise.
func CreateSubModel(env Env, parent *Actor, suffix string, bucket DrawBucket) *PartsModel {
	name := parent.Name + suffix
	if !env.Archives().IsObjectDataExist(name) {
		return nil
	}
	p := NewPartsModel(env, parent, name, name, bucket)
	p.InitFixedPositionRelative(r3.Vec{})
	p.TryStartAllAnim(name)
	return p
}

// CreatePartsModelMapObj adds a map object part at a local offset.
func CreatePartsModelMapObj(env Env, parent *Actor, objName string, local r3.Vec) *PartsModel {
	p := NewPartsModel(env, parent, objName, objName, BucketMapObj)
	p.InitFixedPositionRelative(local)
	return p
}

// ModelObj is a standalone model that follows another actor's matrix.
// Bloom companions are ModelObjs.
type ModelObj struct {
	Actor
	follow *geom.Mtx
}

// NewModelObj builds a model following m. A nil m places it by its own transform.
func NewModelObj(env Env, objName, modelName string, m *geom.Mtx, bucket DrawBucket) *ModelObj {
	o := &ModelObj{
		Actor:  NewActor(components.NewPlacementAt(objName, r3.Vec{})),
		follow: m,
	}
	o.SetObjName(modelName)
	o.InitModel(env, modelName)
	if m != nil {
		o.Translation = m.T
	}
	if bucket == BucketNone {
		bucket = BucketNoShadowedMapObj
	}
	o.ConnectToScene(bucket)
	return o
}

func (o *ModelObj) Movement(*Frame) {}

func (o *ModelObj) CalcAndSetBaseMtx(*Frame) {
	if o.follow == nil {
		o.CalcDefaultMtx()
		return
	}
	o.Translation = o.follow.T
	o.BaseMtx = *o.follow
}

// CreateBloomModel adds "<objName>Bloom" to a as a part when it exists.
func CreateBloomModel(env Env, a *Actor, objName string) *ModelObj {
	name := objName + "Bloom"
	if !env.Archives().IsObjectDataExist(name) {
		return nil
	}
	o := NewModelObj(env, a.Name, name, &a.BaseMtx, BucketBloom)
	a.AddPart(o)
	return o
}

// Goods are the models an NPC carries on its joints.
type Goods struct {
	Goods0 *PartsModel
	Goods1 *PartsModel
}

// EquipGoods hangs the item's goods from the owner's joints.
func EquipGoods(env Env, owner *Actor, item config.NPCItem, indirect bool) Goods {
	bucket := BucketNPC
	if indirect {
		bucket = BucketIndirectNPC
	}
	var g Goods
	if item.Goods0 != "" {
		g.Goods0 = createGoods(env, owner, item.Goods0, item.Joint0, bucket)
	}
	if item.Goods1 != "" {
		g.Goods1 = createGoods(env, owner, item.Goods1, item.Joint1, bucket)
	}
	return g
}

func createGoods(env Env, owner *Actor, objName, joint string, bucket DrawBucket) *PartsModel {
	p := NewPartsModel(env, owner, objName, objName, bucket)
	p.InitFixedPositionJoint(joint, r3.Vec{})
	p.InitLightCtrl()
	return p
}

// RequestGoodsArchives declares the goods models of npc's item index.
func RequestGoodsArchives(env Env, npc string, index int) {
	item, ok := env.NPCItem(npc, index)
	if !ok {
		return
	}
	if item.Goods0 != "" {
		env.Archives().RequestObjectData(item.Goods0)
	}
	if item.Goods1 != "" {
		env.Archives().RequestObjectData(item.Goods1)
	}
}
