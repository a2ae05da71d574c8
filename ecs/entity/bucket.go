package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/prefabs"
)

var (
	wallColor    = color.NRGBA{R: 0xfa, G: 0xeb, B: 0xd7, A: 0xff} // antique white
	barrierColor = color.NRGBA{R: 0xff, A: 0xff}
)

// BuildBucket spawns every static rectangle of the container from the
// bucket prefab: the bucket walls plus the out-of-bounds barriers.
func BuildBucket(w *ecs.World) error {
	spec, err := prefabs.LoadBucket()
	if err != nil {
		return fmt.Errorf("entity: build bucket: %w", err)
	}
	for _, wall := range spec.Walls {
		e := w.Create()
		clr := wallColor
		if wall.Barrier {
			clr = barrierColor
			_ = ecs.Add(w, e, component.BarrierTagComponent, component.BarrierTag{})
		}
		_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: wall.X, Y: wall.Y})
		_ = ecs.Add(w, e, component.RectComponent, component.Rect{Width: wall.Width, Height: wall.Height, Color: clr})
		_ = ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Width:    wall.Width,
			Height:   wall.Height,
			Friction: 0.8,
			Static:   true,
		})
	}
	return nil
}
