package system

import (
	"testing"

	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// newGameWorld builds a world with the singleton state entity the systems
// expect, mirroring the wiring in the game bootstrap.
func newGameWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	ge := w.Create()
	if err := ecs.Add(w, ge, component.GameComponent, component.Game{}); err != nil {
		t.Fatalf("add game state: %v", err)
	}
	if err := ecs.Add(w, ge, component.PointerComponent, component.Pointer{}); err != nil {
		t.Fatalf("add pointer state: %v", err)
	}
	return w, ge
}

func gameState(t *testing.T, w *ecs.World, ge ecs.Entity) component.Game {
	t.Helper()
	game, ok := ecs.Get(w, ge, component.GameComponent)
	if !ok {
		t.Fatalf("game state missing")
	}
	return game
}

func setGame(t *testing.T, w *ecs.World, ge ecs.Entity, game component.Game) {
	t.Helper()
	if err := ecs.Add(w, ge, component.GameComponent, game); err != nil {
		t.Fatalf("set game state: %v", err)
	}
}

func setPointer(t *testing.T, w *ecs.World, ge ecs.Entity, worldX float64, released bool) {
	t.Helper()
	if err := ecs.Add(w, ge, component.PointerComponent, component.Pointer{WorldX: worldX, Released: released}); err != nil {
		t.Fatalf("set pointer state: %v", err)
	}
}

func countBalls(w *ecs.World) int {
	return len(w.Query(component.BallComponent.ID()))
}

func newBarrier(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.Create()
	if err := ecs.Add(w, e, component.BarrierTagComponent, component.BarrierTag{}); err != nil {
		t.Fatalf("add barrier tag: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add barrier transform: %v", err)
	}
	return e
}
