package main

import (
	"flag"
	"log"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/ecs/entity"
	"github.com/milk9111/bingle/ecs/system"
)

// Headless autoplayer: runs the full rule engine without a window,
// dropping balls at random positions. Useful for soak-testing the merge
// pipeline and checking that a seed replays the same final ledger.
func main() {
	ticks := flag.Int("ticks", common.TickRate*60*5, "ticks to simulate")
	seed := flag.Int64("seed", 1, "drop sequence seed")
	dropEvery := flag.Int("drop-every", 45, "ticks between drop attempts")
	flag.Parse()

	w := ecs.NewWorld()
	state := w.Create()
	_ = ecs.Add(w, state, component.GameComponent, component.Game{RestartQueued: true})
	_ = ecs.Add(w, state, component.PointerComponent, component.Pointer{})
	if err := entity.BuildBucket(w); err != nil {
		log.Fatal(err)
	}

	rng := common.NewRNG(*seed)
	physics := system.NewPhysicsSystem()
	drop := system.NewDropSystem(rng, system.LoadDropTable())
	scheduler := ecs.NewScheduler(
		drop,
		physics,
		system.NewMergeSystem(physics.Contacts()),
		system.NewGrowthSystem(),
		system.NewGameStateSystem(physics.Contacts(), common.StrikeLimit),
		system.NewScoreSystem(),
	)

	for i := 0; i < *ticks; i++ {
		pointer := component.Pointer{}
		if i%*dropEvery == 0 {
			pointer.WorldX = (rng.Float64()*2 - 1) * common.BucketWidth / 2
			pointer.Released = true
		}
		_ = ecs.Add(w, state, component.PointerComponent, pointer)

		scheduler.Update(w)

		for _, evt := range w.Events().Drain() {
			switch evt.Type {
			case ecs.EventGameOver:
				log.Printf("tick %d: game over, score %v", i, evt.Data)
			case ecs.EventRestarted:
				log.Printf("tick %d: round started", i)
			}
		}
	}

	game, _ := ecs.Get(w, state, component.GameComponent)
	balls := len(w.Query(component.BallComponent.ID()))
	log.Printf("done: score=%d interpolated=%d strikes=%d over=%v live_balls=%d contacts=%d",
		game.Score, game.InterpolatedScore, game.Strikes, game.Over, balls, physics.Contacts().Len())
}
