package system

import (
	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// ScoreSystem eases the displayed score toward the real one by a fixed
// step per tick, clamping the final step to the remainder. The step is
// per-tick, so convergence speed follows the tick rate.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (ss *ScoreSystem) Update(w *ecs.World) {
	ge, ok := w.First(component.GameComponent.ID())
	if !ok {
		return
	}
	game, ok := ecs.Get(w, ge, component.GameComponent)
	if !ok {
		return
	}
	if game.Score-game.InterpolatedScore >= common.ScoreEaseStep {
		game.InterpolatedScore += common.ScoreEaseStep
	} else {
		game.InterpolatedScore = game.Score
	}
	_ = ecs.Add(w, ge, component.GameComponent, game)
}
