package system

import (
	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// GrowthSystem advances every in-progress growth by one tick. A growing
// ball's collider and visual radius interpolate from its settled size to
// the target size; on completion the ball settles at the target rank. The
// updated radius lands in the PhysicsBody component, and the physics system
// swaps the live shape before the next step, so the physical footprint
// tracks the animation.
type GrowthSystem struct{}

func NewGrowthSystem() *GrowthSystem {
	return &GrowthSystem{}
}

func (gs *GrowthSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.GrowthComponent, func(e ecs.Entity, growth *component.Growth) {
		ball, ok := ecs.Get(w, e, component.BallComponent)
		if !ok {
			return
		}
		growth.Progress += common.TickDelta / common.GrowDurationSeconds

		target := component.SimpleRank(growth.Target)
		var radius float64
		if growth.Progress >= 1 {
			ball.Rank = target
			_ = ecs.Add(w, e, component.BallComponent, ball)
			ecs.Remove(w, e, component.GrowthComponent)
			radius = target.Size()
		} else {
			radius = common.Lerp(ball.Rank.Size(), target.Size(), growth.Progress)
		}

		if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
			bodyComp.Radius = radius
			_ = ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp)
		}
		if circle, ok := ecs.Get(w, e, component.CircleComponent); ok {
			circle.Radius = radius
			_ = ecs.Add(w, e, component.CircleComponent, circle)
		}
	})
}
