package entity

import (
	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// NewPreview spawns the upcoming-ball proxy outside the bucket. It is
// display-only: no physics body, no Ball component. The dropper swaps the
// whole entity, rather than mutating it, whenever a new rank is rolled.
func NewPreview(w *ecs.World, rank component.Rank) ecs.Entity {
	e := w.Create()
	_ = ecs.Add(w, e, component.PreviewTagComponent, component.PreviewTag{})
	_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: common.UpcomingBallX, Y: common.UpcomingBallY})
	_ = ecs.Add(w, e, component.CircleComponent, component.Circle{Radius: rank.Size(), Color: rank.Color()})
	return e
}
