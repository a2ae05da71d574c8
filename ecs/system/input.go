package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// InputSystem samples mouse and touch state into the Pointer singleton.
// Both devices normalize to one world-space X plus a release trigger; the
// drop gate never sees which device produced them.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	e, ok := w.First(component.PointerComponent.ID())
	if !ok {
		return
	}
	pointer, ok := ecs.Get(w, e, component.PointerComponent)
	if !ok {
		return
	}

	cx, _ := ebiten.CursorPosition()
	pointer.WorldX = screenToWorldX(cx)
	pointer.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// a touch that ended this tick wins over the cursor
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, _ := inpututil.TouchPositionInPreviousTick(id)
		pointer.WorldX = screenToWorldX(tx)
		pointer.Released = true
	}

	_ = ecs.Add(w, e, component.PointerComponent, pointer)
}

func screenToWorldX(sx int) float64 {
	return float64(sx) - common.ScreenSize/2
}
