package system

import (
	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/ecs/entity"
)

// DropSystem is the dropper and spawn gate: it sequences the next
// droppable rank, validates drop requests, and instantiates balls. While
// the round is over, a release requests a restart instead of a drop.
type DropSystem struct {
	rng     *common.RNG
	table   *DropTable
	next    component.Rank
	preview ecs.Entity

	initialized bool
}

// NewDropSystem creates a dropper over the RNG collaborator and drop table.
func NewDropSystem(rng *common.RNG, table *DropTable) *DropSystem {
	return &DropSystem{rng: rng, table: table}
}

// NextRank returns the currently queued rank.
func (ds *DropSystem) NextRank() component.Rank {
	return ds.next
}

// ReloadTable swaps the drop table, used by the prefab watcher.
func (ds *DropSystem) ReloadTable(table *DropTable) {
	if table != nil {
		ds.table = table
	}
}

func (ds *DropSystem) Update(w *ecs.World) {
	if !ds.initialized {
		ds.next = ds.table.Roll(ds.rng)
		ds.preview = entity.NewPreview(w, ds.next)
		ds.initialized = true
	}

	pe, ok := w.First(component.PointerComponent.ID())
	if !ok {
		return
	}
	pointer, ok := ecs.Get(w, pe, component.PointerComponent)
	if !ok || !pointer.Released {
		return
	}

	ge, ok := w.First(component.GameComponent.ID())
	if !ok {
		return
	}
	game, ok := ecs.Get(w, ge, component.GameComponent)
	if !ok {
		return
	}

	if game.Over {
		game.RestartQueued = true
		_ = ecs.Add(w, ge, component.GameComponent, game)
		return
	}

	x := common.Clamp(pointer.WorldX,
		-common.BucketWidth*0.5-common.BarrierPadding*0.5,
		common.BucketWidth*0.5+common.BarrierPadding*0.5)
	if ds.blocked(w, x) {
		return
	}

	entity.NewBall(w, ds.next, x, common.BallDropperOffset)

	ds.next = ds.table.Roll(ds.rng)
	w.Destroy(ds.preview)
	ds.preview = entity.NewPreview(w, ds.next)
}

// blocked rejects a drop when any live ball sits at or above the spam
// threshold with the requested point less than the block distance to its
// right. The comparison is a signed difference, not an absolute one, so a
// high ball always blocks drops anywhere to its left; this asymmetry is
// long-standing behavior that players route around, so it stays.
func (ds *DropSystem) blocked(w *ecs.World, x float64) bool {
	for _, e := range w.Query(component.BallComponent.ID(), component.TransformComponent.ID()) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		if t.Y >= common.DropSpamYBlockOffset && x-t.X < common.DropSpamXBlockDistance {
			return true
		}
	}
	return false
}
