package system

import (
	"testing"

	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/ecs/entity"
)

func TestMergeEqualBallsKeepsLower(t *testing.T) {
	w, ge := newGameWorld(t)
	upper := entity.NewBall(w, component.SimpleRank(1), 0, 10)
	lower := entity.NewBall(w, component.SimpleRank(1), 5, -5)

	contacts := NewContacts()
	contacts.Begin(upper, lower)

	NewMergeSystem(contacts).Update(w)

	if w.Alive(upper) {
		t.Fatalf("upper ball should despawn")
	}
	if !w.Alive(lower) {
		t.Fatalf("lower ball should survive")
	}
	growth, ok := ecs.Get(w, lower, component.GrowthComponent)
	if !ok {
		t.Fatalf("survivor should be growing")
	}
	if growth.Target != 2 || growth.Progress != 0 {
		t.Fatalf("expected growth to target 2 from zero progress, got %+v", growth)
	}
	circle, _ := ecs.Get(w, lower, component.CircleComponent)
	if circle.Color != component.SimpleRank(2).Color() {
		t.Fatalf("survivor should recolor to the target rank immediately")
	}
	if game := gameState(t, w, ge); game.Score != 22 {
		t.Fatalf("expected score 22, got %d", game.Score)
	}
	if contacts.Len() != 0 {
		t.Fatalf("resolved pair should leave the contact set")
	}
}

func TestMergeTieGoesToFirstPairMember(t *testing.T) {
	w, _ := newGameWorld(t)
	a := entity.NewBall(w, component.SimpleRank(1), -5, 5)
	b := entity.NewBall(w, component.SimpleRank(1), 5, 5)

	contacts := NewContacts()
	contacts.Begin(a, b)
	NewMergeSystem(contacts).Update(w)

	if !w.Alive(a) || w.Alive(b) {
		t.Fatalf("on equal height the first pair member survives")
	}
}

func TestMergeGrowsAtMostOncePerTick(t *testing.T) {
	w, ge := newGameWorld(t)
	kept := entity.NewBall(w, component.SimpleRank(1), 0, 0)
	n1 := entity.NewBall(w, component.SimpleRank(1), 10, 10)
	n2 := entity.NewBall(w, component.SimpleRank(1), -10, 20)

	contacts := NewContacts()
	contacts.Begin(kept, n1)
	contacts.Begin(kept, n2)
	NewMergeSystem(contacts).Update(w)

	if !w.Alive(kept) {
		t.Fatalf("lowest ball should survive")
	}
	if w.Alive(n1) == w.Alive(n2) {
		t.Fatalf("exactly one neighbor should despawn, alive: n1=%v n2=%v", w.Alive(n1), w.Alive(n2))
	}
	if game := gameState(t, w, ge); game.Score != 22 {
		t.Fatalf("a ball grows at most once per tick, expected score 22, got %d", game.Score)
	}
	if contacts.Len() != 1 {
		t.Fatalf("the deferred pair should stay active for the next tick, got %d pairs", contacts.Len())
	}
}

func TestMergeChainedGrowthHalvesProgress(t *testing.T) {
	w, ge := newGameWorld(t)
	kept := entity.NewBall(w, component.SimpleRank(1), 0, -10)
	if err := ecs.Add(w, kept, component.GrowthComponent, component.Growth{Target: 2, Progress: 0.5}); err != nil {
		t.Fatalf("add growth: %v", err)
	}
	other := entity.NewBall(w, component.SimpleRank(2), 0, 10)

	contacts := NewContacts()
	contacts.Begin(kept, other)
	NewMergeSystem(contacts).Update(w)

	if w.Alive(other) {
		t.Fatalf("settled ball should despawn into the growing one")
	}
	growth, ok := ecs.Get(w, kept, component.GrowthComponent)
	if !ok {
		t.Fatalf("kept ball should still be growing")
	}
	if growth.Target != 3 {
		t.Fatalf("expected retarget to 3, got %d", growth.Target)
	}
	if growth.Progress != 0.25 {
		t.Fatalf("chained merge should halve progress to 0.25, got %v", growth.Progress)
	}
	if game := gameState(t, w, ge); game.Score != 44 {
		t.Fatalf("score uses both effective levels, expected 44, got %d", game.Score)
	}
}

func TestMergeSkipsMismatchedPairs(t *testing.T) {
	cases := []struct {
		name  string
		rankA component.Rank
		rankB component.Rank
	}{
		{"unequal_levels", component.SimpleRank(1), component.SimpleRank(2)},
		{"special_pair", component.SpecialRank(), component.SpecialRank()},
		{"special_vs_simple", component.SpecialRank(), component.SimpleRank(1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ge := newGameWorld(t)
			a := entity.NewBall(w, c.rankA, 0, 0)
			b := entity.NewBall(w, c.rankB, 10, 10)

			contacts := NewContacts()
			contacts.Begin(a, b)
			NewMergeSystem(contacts).Update(w)

			if !w.Alive(a) || !w.Alive(b) {
				t.Fatalf("mismatched pair must not merge")
			}
			if !contacts.Has(a, b) {
				t.Fatalf("unresolved pair stays active for re-evaluation")
			}
			if game := gameState(t, w, ge); game.Score != 0 {
				t.Fatalf("no score for skipped pairs, got %d", game.Score)
			}
		})
	}
}

func TestMergeMatchesOnEffectiveRank(t *testing.T) {
	// A settled level-1 ball growing toward 2 merges with a settled level-2
	// ball, not with another level-1.
	w, _ := newGameWorld(t)
	growing := entity.NewBall(w, component.SimpleRank(1), 0, 0)
	if err := ecs.Add(w, growing, component.GrowthComponent, component.Growth{Target: 2}); err != nil {
		t.Fatalf("add growth: %v", err)
	}
	levelOne := entity.NewBall(w, component.SimpleRank(1), 10, 10)

	contacts := NewContacts()
	contacts.Begin(growing, levelOne)
	NewMergeSystem(contacts).Update(w)

	if !w.Alive(growing) || !w.Alive(levelOne) {
		t.Fatalf("growing ball ranks as its target, so a settled level-1 no longer matches")
	}
}

func TestBarrierContactStrikesAndDespawns(t *testing.T) {
	w, ge := newGameWorld(t)
	barrier := newBarrier(t, w, 250, 0)
	ball := entity.NewBall(w, component.SimpleRank(1), 240, 0)

	contacts := NewContacts()
	contacts.Begin(ball, barrier)
	NewMergeSystem(contacts).Update(w)

	if w.Alive(ball) {
		t.Fatalf("ball touching a barrier should despawn")
	}
	if !w.Alive(barrier) {
		t.Fatalf("barrier must survive")
	}
	game := gameState(t, w, ge)
	if game.Strikes != 1 {
		t.Fatalf("expected 1 strike, got %d", game.Strikes)
	}
	if game.Score != 0 {
		t.Fatalf("strikes do not score, got %d", game.Score)
	}
	if contacts.Len() != 0 {
		t.Fatalf("resolved pair should leave the contact set")
	}
}

func TestMergeDropsStalePairsSilently(t *testing.T) {
	w, ge := newGameWorld(t)
	a := entity.NewBall(w, component.SimpleRank(1), 0, 0)
	b := entity.NewBall(w, component.SimpleRank(1), 10, 10)

	contacts := NewContacts()
	contacts.Begin(a, b)
	w.Destroy(b)

	NewMergeSystem(contacts).Update(w)

	if !w.Alive(a) {
		t.Fatalf("live member of a stale pair is untouched")
	}
	if contacts.Len() != 0 {
		t.Fatalf("stale pair should be pruned")
	}
	if game := gameState(t, w, ge); game.Score != 0 || game.Strikes != 0 {
		t.Fatalf("stale pairs have no game effect, got %+v", game)
	}
}

func TestContactsUnorderedPairSemantics(t *testing.T) {
	w := ecs.NewWorld()
	a := w.Create()
	b := w.Create()
	c := w.Create()

	contacts := NewContacts()
	contacts.Begin(a, b)
	contacts.Begin(b, a)
	if contacts.Len() != 1 {
		t.Fatalf("pair membership is unordered, got %d entries", contacts.Len())
	}
	if !contacts.Has(b, a) {
		t.Fatalf("Has must match either member order")
	}

	contacts.End(a, c) // absent pair, must be a no-op
	if contacts.Len() != 1 {
		t.Fatalf("ending an absent pair must not disturb the set")
	}

	contacts.Begin(a, c)
	contacts.DropEntity(a)
	if contacts.Len() != 0 {
		t.Fatalf("DropEntity should remove every pair referencing the entity")
	}
}
