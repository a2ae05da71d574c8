package system

import (
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// MergeSystem resolves the active contact set once per tick. Two touching
// Simple balls of equal effective rank merge: the lower one is kept and
// grows a rank, the other despawns. A ball touching a barrier despawns and
// costs a strike. Everything else stays in the set for re-evaluation next
// tick, since growth can change a ball's effective rank while the physical
// contact persists.
type MergeSystem struct {
	contacts *Contacts
}

// NewMergeSystem creates a resolver over the given contact set.
func NewMergeSystem(contacts *Contacts) *MergeSystem {
	return &MergeSystem{contacts: contacts}
}

func (ms *MergeSystem) Update(w *ecs.World) {
	ge, ok := w.First(component.GameComponent.ID())
	if !ok {
		return
	}
	game, ok := ecs.Get(w, ge, component.GameComponent)
	if !ok {
		return
	}

	// kept balls this pass; a ball grows at most once per tick even when
	// touching several equal-rank neighbors
	visited := make(map[ecs.Entity]struct{})
	var resolved []pairKey

	for _, pair := range ms.contacts.Pairs() {
		a, b := pair[0], pair[1]

		// a member despawned earlier in this pass leaves a stale pair; drop
		// it silently rather than treating it as an error
		if !w.Alive(a) || !w.Alive(b) {
			resolved = append(resolved, pair)
			continue
		}

		ballA, aIsBall := ecs.Get(w, a, component.BallComponent)
		ballB, bIsBall := ecs.Get(w, b, component.BallComponent)

		if aIsBall && bIsBall {
			ra := effectiveRank(w, a, ballA)
			rb := effectiveRank(w, b, ballB)
			if ra.Kind != component.RankSimple || rb.Kind != component.RankSimple || ra.Level != rb.Level {
				continue
			}
			ta, okA := ecs.Get(w, a, component.TransformComponent)
			tb, okB := ecs.Get(w, b, component.TransformComponent)
			if !okA || !okB {
				continue
			}

			// the lower ball is kept; ties go to the first pair member
			kept, removed := a, b
			if tb.Y < ta.Y {
				kept, removed = b, a
			}
			if _, seen := visited[kept]; seen {
				continue
			}
			visited[kept] = struct{}{}

			w.Destroy(removed)
			ms.growBall(w, kept, ra.Level+1)
			game.Score += (ra.Level + rb.Level) * 11
			resolved = append(resolved, pair)
			continue
		}

		// any ball touching a barrier despawns and costs a strike
		var ball ecs.Entity
		switch {
		case ecs.Has(w, a, component.BarrierTagComponent) && bIsBall:
			ball = b
		case ecs.Has(w, b, component.BarrierTagComponent) && aIsBall:
			ball = a
		default:
			continue
		}
		w.Destroy(ball)
		game.Strikes++
		resolved = append(resolved, pair)
	}

	for _, pair := range resolved {
		ms.contacts.End(pair[0], pair[1])
	}
	_ = ecs.Add(w, ge, component.GameComponent, game)
}

// growBall retargets the kept ball's growth. A ball mid-growth keeps half
// its progress so chained merges animate continuously instead of snapping
// back to zero. The visual recolors to the target rank immediately; only
// the size interpolates.
func (ms *MergeSystem) growBall(w *ecs.World, kept ecs.Entity, target int) {
	growth, growing := ecs.Get(w, kept, component.GrowthComponent)
	if growing {
		growth.Target = target
		growth.Progress *= 0.5
	} else {
		growth = component.Growth{Target: target}
	}
	_ = ecs.Add(w, kept, component.GrowthComponent, growth)

	if circle, ok := ecs.Get(w, kept, component.CircleComponent); ok {
		circle.Color = component.SimpleRank(target).Color()
		_ = ecs.Add(w, kept, component.CircleComponent, circle)
	}
}

// effectiveRank is the rank used for merge matching: the growth target if
// the ball is mid-growth, else its settled rank.
func effectiveRank(w *ecs.World, e ecs.Entity, ball component.Ball) component.Rank {
	if growth, ok := ecs.Get(w, e, component.GrowthComponent); ok {
		return component.SimpleRank(growth.Target)
	}
	return ball.Rank
}
