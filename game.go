package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bingle/common"
	"github.com/milk9111/bingle/ecs"
	"github.com/milk9111/bingle/ecs/component"
	"github.com/milk9111/bingle/ecs/entity"
	"github.com/milk9111/bingle/ecs/system"
	"github.com/milk9111/bingle/prefabs"
)

// Game wires the tick pipeline to ebiten. Update runs the fixed-order
// scheduler once per tick; Draw renders the world and HUD.
type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	drop      *system.DropSystem
	render    *system.RenderSystem
	hud       *HUD
	watcher   *prefabs.Watcher
}

// NewGame builds the world, the container, and the system pipeline. The
// initial restart request seeds the round and tells the HUD to reset.
func NewGame(seed int64, debug bool) (*Game, error) {
	w := ecs.NewWorld()

	state := w.Create()
	_ = ecs.Add(w, state, component.GameComponent, component.Game{RestartQueued: true})
	_ = ecs.Add(w, state, component.PointerComponent, component.Pointer{})

	if err := entity.BuildBucket(w); err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem()
	drop := system.NewDropSystem(common.NewRNG(seed), system.LoadDropTable())
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		drop,
		physics,
		system.NewMergeSystem(physics.Contacts()),
		system.NewGrowthSystem(),
		system.NewGameStateSystem(physics.Contacts(), common.StrikeLimit),
		system.NewScoreSystem(),
	)

	g := &Game{
		world:     w,
		scheduler: scheduler,
		drop:      drop,
		render:    system.NewRenderSystem(),
		hud:       NewHUD(),
	}

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventGameOver:
			score, _ := evt.Data.(int)
			g.hud.ShowGameOver(score)
		case ecs.EventRestarted:
			g.hud.HideGameOver()
		}
	}

	if ge, ok := g.world.First(component.GameComponent.ID()); ok {
		if game, ok := ecs.Get(g.world, ge, component.GameComponent); ok {
			g.hud.SetScore(game.InterpolatedScore)
			g.hud.SetStrikes(common.StrikeLimit-game.Strikes, common.StrikeLimit)
		}
	}
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.world)
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(common.ScreenSize), int(common.ScreenSize)
}

// drainWatcher applies pending prefab edits between ticks.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab changed: %s", name)
			entity.ReloadSpecs()
			g.drop.ReloadTable(system.LoadDropTable())
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}
