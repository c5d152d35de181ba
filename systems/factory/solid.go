package factory

import (
	"github.com/automoto/chainbound/archetypes"
	"github.com/automoto/chainbound/components"
	"github.com/automoto/chainbound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// solidKinds maps level tile kinds to component kind and resolv tags.
// Surface variants carry the solid tag too so the collision pass treats
// them as full blocks.
var solidKinds = map[string]struct {
	kind components.SolidKind
	tags []string
}{
	"block":     {components.KindBlock, []string{tags.ResolvSolid}},
	"oneway":    {components.KindOneWay, []string{tags.ResolvOneWay}},
	"ice":       {components.KindIce, []string{tags.ResolvSolid, tags.ResolvIce}},
	"bouncy":    {components.KindBouncy, []string{tags.ResolvSolid, tags.ResolvBouncy}},
	"breakable": {components.KindBreakable, []string{tags.ResolvSolid, tags.ResolvBreakable}},
	"spike":     {components.KindSpike, []string{tags.ResolvSpike}},
}

// CreateSolid creates a static block of the given kind at x,y.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64, kind string, ground bool) *donburi.Entry {
	sk, ok := solidKinds[kind]
	if !ok {
		sk = solidKinds["block"]
	}

	var solid *donburi.Entry
	if sk.kind == components.KindBreakable {
		solid = archetypes.Breakable.Spawn(ecs)
		components.Breakable.SetValue(solid, components.BreakableData{})
	} else {
		solid = archetypes.Solid.Spawn(ecs)
	}

	obj := resolv.NewObject(x, y, w, h, sk.tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = solid // Link for O(1) lookup

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	components.Solid.SetValue(solid, components.SolidData{Kind: sk.kind, Ground: ground})

	addToSpace(ecs, obj)

	return solid
}
