package system

import (
	"testing"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/ecs/entity"
)

func TestGrowthAdvancesAndLerpsRadius(t *testing.T) {
	w, _ := newGameWorld(t)
	ball := entity.NewBall(w, component.SimpleRank(1), 0, 0)
	if err := ecs.Add(w, ball, component.GrowthComponent, component.Growth{Target: 2}); err != nil {
		t.Fatalf("add growth: %v", err)
	}

	NewGrowthSystem().Update(w)

	step := common.TickDelta / common.GrowDurationSeconds
	growth, ok := ecs.Get(w, ball, component.GrowthComponent)
	if !ok {
		t.Fatalf("growth should still be in progress")
	}
	if growth.Progress != step {
		t.Fatalf("expected progress %v after one tick, got %v", step, growth.Progress)
	}

	from := component.SimpleRank(1).Size()
	to := component.SimpleRank(2).Size()
	want := common.Lerp(from, to, step)
	body, _ := ecs.Get(w, ball, component.PhysicsBodyComponent)
	if body.Radius != want {
		t.Fatalf("collider radius should track the animation: want %v, got %v", want, body.Radius)
	}
	circle, _ := ecs.Get(w, ball, component.CircleComponent)
	if circle.Radius != want {
		t.Fatalf("visual radius should track the animation: want %v, got %v", want, circle.Radius)
	}

	if b, _ := ecs.Get(w, ball, component.BallComponent); b.Rank != component.SimpleRank(1) {
		t.Fatalf("settled rank must not change until growth completes, got %+v", b.Rank)
	}
}

func TestGrowthSettlesExactlyOnce(t *testing.T) {
	w, _ := newGameWorld(t)
	ball := entity.NewBall(w, component.SimpleRank(1), 0, 0)
	if err := ecs.Add(w, ball, component.GrowthComponent, component.Growth{Target: 2, Progress: 0.999}); err != nil {
		t.Fatalf("add growth: %v", err)
	}

	gs := NewGrowthSystem()
	gs.Update(w)

	if ecs.Has(w, ball, component.GrowthComponent) {
		t.Fatalf("completed growth should be removed")
	}
	b, _ := ecs.Get(w, ball, component.BallComponent)
	if b.Rank != component.SimpleRank(2) {
		t.Fatalf("ball should settle at the target rank, got %+v", b.Rank)
	}
	body, _ := ecs.Get(w, ball, component.PhysicsBodyComponent)
	if want := component.SimpleRank(2).Size(); body.Radius != want {
		t.Fatalf("settled radius should be exactly the target size %v, got %v", want, body.Radius)
	}

	// a second pass over a settled ball is a no-op
	gs.Update(w)
	if b, _ := ecs.Get(w, ball, component.BallComponent); b.Rank != component.SimpleRank(2) {
		t.Fatalf("settled ball must stay settled, got %+v", b.Rank)
	}
}

func TestGrowthRunsToCompletionOverFullDuration(t *testing.T) {
	w, _ := newGameWorld(t)
	ball := entity.NewBall(w, component.SimpleRank(1), 0, 0)
	if err := ecs.Add(w, ball, component.GrowthComponent, component.Growth{Target: 2}); err != nil {
		t.Fatalf("add growth: %v", err)
	}

	gs := NewGrowthSystem()
	ticks := int(common.GrowDurationSeconds*common.TickRate) + 1
	for i := 0; i < ticks; i++ {
		gs.Update(w)
	}

	if ecs.Has(w, ball, component.GrowthComponent) {
		t.Fatalf("growth should complete within %d ticks", ticks)
	}
	if b, _ := ecs.Get(w, ball, component.BallComponent); b.Rank != component.SimpleRank(2) {
		t.Fatalf("ball should settle at level 2, got %+v", b.Rank)
	}
}

func TestGrowthIgnoresNonBalls(t *testing.T) {
	w, _ := newGameWorld(t)
	e := w.Create()
	if err := ecs.Add(w, e, component.GrowthComponent, component.Growth{Target: 2}); err != nil {
		t.Fatalf("add growth: %v", err)
	}

	NewGrowthSystem().Update(w)

	growth, ok := ecs.Get(w, e, component.GrowthComponent)
	if !ok || growth.Progress != 0 {
		t.Fatalf("growth on a non-ball should not advance, got %+v ok=%v", growth, ok)
	}
}
