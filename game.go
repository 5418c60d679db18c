package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/prefabs"
)

type Game struct {
	world *ecs.World
	hooks *system.HookSystem

	player ecs.Entity
	enemy  ecs.Entity

	watcher *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	debug bool
}

func NewGame(debug bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("player prefab: %w", err)
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, fmt.Errorf("enemy prefab: %w", err)
	}

	w := ecs.NewWorld()
	hooks := system.NewHookSystem()

	// Frame order: input -> decisions -> physics step -> post-physics
	// correction -> event-driven hooks.
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewEnemyAISystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewBoundsSystem())
	w.AddSystem(hooks)

	player, err := entity.NewPlayer(w, playerSpec)
	if err != nil {
		return nil, fmt.Errorf("build player: %w", err)
	}
	enemy, err := entity.NewEnemy(w, enemySpec)
	if err != nil {
		return nil, fmt.Errorf("build enemy: %w", err)
	}

	g := &Game{
		world:  w,
		hooks:  hooks,
		player: player,
		enemy:  enemy,
		debug:  debug,
	}
	g.pauseUI = NewPauseUI(g)

	// Live tuning is a convenience; run without it if the prefab dirs are
	// not on disk (e.g. embedded-only builds).
	watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
	if err != nil {
		log.Printf("prefab watcher unavailable: %v", err)
	} else {
		g.watcher = watcher
	}

	log.Printf("topdown: world ready, player=%v enemy=%v", player, enemy)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollPrefabChanges()
	g.world.Update()
	return nil
}

func (g *Game) pollPrefabChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(path string) {
	rel := strings.TrimPrefix(filepath.ToSlash(path), "prefabs/")
	switch {
	case rel == "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("reload %s rejected: %v", rel, err)
			return
		}
		if err := entity.ApplyPlayerSpec(g.world, g.player, spec); err != nil {
			log.Printf("reload %s: %v", rel, err)
			return
		}
		log.Printf("reloaded %s", rel)
	case rel == "enemy.yaml":
		spec, err := prefabs.LoadEnemySpec()
		if err != nil {
			log.Printf("reload %s rejected: %v", rel, err)
			return
		}
		if err := entity.ApplyEnemySpec(g.world, g.enemy, spec); err != nil {
			log.Printf("reload %s: %v", rel, err)
			return
		}
		log.Printf("reloaded %s", rel)
	case strings.HasSuffix(rel, ".tengo"):
		g.hooks.Invalidate(rel)
		log.Printf("reloaded hook %s", rel)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.debug)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
