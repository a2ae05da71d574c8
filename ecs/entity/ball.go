package entity

import (
	"log"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/prefabs"
)

var cachedBallSpec *prefabs.BallSpec

func ballSpec() *prefabs.BallSpec {
	if cachedBallSpec != nil {
		return cachedBallSpec
	}
	spec, err := prefabs.LoadBall()
	if err != nil {
		log.Printf("entity: ball spec: %v (using defaults)", err)
		spec = &prefabs.BallSpec{
			Restitution:  common.BallRestitution,
			Friction:     common.BallFriction,
			GravityScale: common.BallGravityScale,
			Mass:         1,
		}
	}
	cachedBallSpec = spec
	return spec
}

// ReloadSpecs drops cached prefab specs so the next build re-reads them,
// hooked up to the prefab watcher in debug builds.
func ReloadSpecs() {
	cachedBallSpec = nil
}

// NewBall spawns a settled ball of the given rank at a position, with the
// standard dynamic-body tuning from the ball prefab.
func NewBall(w *ecs.World, rank component.Rank, x, y float64) ecs.Entity {
	spec := ballSpec()
	e := w.Create()
	_ = ecs.Add(w, e, component.BallComponent, component.Ball{Rank: rank})
	_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.CircleComponent, component.Circle{Radius: rank.Size(), Color: rank.Color()})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Radius:     rank.Size(),
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Restitution,
	})
	_ = ecs.Add(w, e, component.GravityScaleComponent, component.GravityScale{Scale: spec.GravityScale})
	return e
}
