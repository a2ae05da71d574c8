package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

var backgroundColor = color.NRGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}

// RenderSystem draws the world. It runs on ebiten's draw side, outside the
// tick pipeline, and never mutates simulation state.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (rs *RenderSystem) Draw(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(backgroundColor)

	for _, e := range w.Query(component.RectComponent.ID(), component.TransformComponent.ID()) {
		rect, okR := ecs.Get(w, e, component.RectComponent)
		t, okT := ecs.Get(w, e, component.TransformComponent)
		if !okR || !okT {
			continue
		}
		sx, sy := worldToScreen(t.X-rect.Width/2, t.Y+rect.Height/2)
		vector.DrawFilledRect(screen, sx, sy, float32(rect.Width), float32(rect.Height), rect.Color, false)
	}

	for _, e := range w.Query(component.CircleComponent.ID(), component.TransformComponent.ID()) {
		circle, okC := ecs.Get(w, e, component.CircleComponent)
		t, okT := ecs.Get(w, e, component.TransformComponent)
		if !okC || !okT {
			continue
		}
		sx, sy := worldToScreen(t.X, t.Y)
		vector.DrawFilledCircle(screen, sx, sy, float32(circle.Radius), circle.Color, true)
	}
}

// worldToScreen maps world coordinates (Y up, origin centered) to screen
// coordinates (Y down, origin top-left).
func worldToScreen(x, y float64) (float32, float32) {
	return float32(x + common.ScreenSize/2), float32(common.ScreenSize/2 - y)
}
