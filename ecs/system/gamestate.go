package system

import (
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
)

// GameStateSystem owns the Alive/Over lifecycle. It performs queued
// restarts, then fires the one-shot game-over transition the tick strikes
// first reach the limit.
type GameStateSystem struct {
	contacts    *Contacts
	strikeLimit int
}

// NewGameStateSystem creates the lifecycle system over the contact set.
func NewGameStateSystem(contacts *Contacts, strikeLimit int) *GameStateSystem {
	return &GameStateSystem{contacts: contacts, strikeLimit: strikeLimit}
}

func (gs *GameStateSystem) Update(w *ecs.World) {
	ge, ok := w.First(component.GameComponent.ID())
	if !ok {
		return
	}
	game, ok := ecs.Get(w, ge, component.GameComponent)
	if !ok {
		return
	}

	if game.RestartQueued {
		game.RestartQueued = false
		game.Score = 0
		game.InterpolatedScore = 0
		game.Strikes = 0
		game.Over = false
		for _, e := range w.Query(component.BallComponent.ID()) {
			w.Destroy(e)
		}
		gs.contacts.Clear()
		w.Events().Push(ecs.Event{Type: ecs.EventRestarted})
	}

	if game.Strikes >= gs.strikeLimit && !game.Over {
		game.Over = true
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: game.Score})
	}

	_ = ecs.Add(w, ge, component.GameComponent, game)
}
