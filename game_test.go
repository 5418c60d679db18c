package main

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/prefabs"
)

// Bodies are built by the physics pass, which runs after the decision
// systems; the controllers must ride out the first frame instead of
// disabling themselves.
func TestNewGameControllersComeAlive(t *testing.T) {
	g, err := NewGame(false)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if g.watcher != nil {
		defer g.watcher.Close()
	}

	for i := 0; i < 10; i++ {
		g.world.Update()
	}

	st, ok := ecs.Get(g.world, g.enemy, component.EnemyStateComponent)
	if !ok {
		t.Fatalf("enemy state component missing")
	}
	if st.Disabled {
		t.Fatalf("enemy controller disabled during startup")
	}
	if st.Current != component.StatePatrol {
		t.Fatalf("expected enemy patrolling after startup, got %q", st.Current)
	}

	if pb, _ := ecs.Get(g.world, g.enemy, component.PhysicsBodyComponent); pb.Body == nil {
		t.Fatalf("enemy body never built")
	}
	if pb, _ := ecs.Get(g.world, g.player, component.PhysicsBodyComponent); pb.Body == nil {
		t.Fatalf("player body never built")
	}
}

// Same frame order as NewGame minus the hardware input poll, so a held
// movement direction can be injected.
func TestFrameOrderPlayerMoves(t *testing.T) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player prefab: %v", err)
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		t.Fatalf("enemy prefab: %v", err)
	}

	w := ecs.NewWorld()
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewEnemyAISystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewBoundsSystem())
	w.AddSystem(system.NewHookSystem())

	player, err := entity.NewPlayer(w, playerSpec)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	enemy, err := entity.NewEnemy(w, enemySpec)
	if err != nil {
		t.Fatalf("build enemy: %v", err)
	}

	if err := ecs.Add(w, player, component.InputComponent, component.Input{MoveX: 1}); err != nil {
		t.Fatalf("hold input: %v", err)
	}

	for i := 0; i < 10; i++ {
		w.Update()
	}

	pb, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	if pb.Body == nil {
		t.Fatalf("player body never built")
	}
	if vel := pb.Body.Velocity(); vel.X != playerSpec.MoveSpeed {
		t.Fatalf("expected player velocity %v with held input, got %v", playerSpec.MoveSpeed, vel)
	}
	if pos := pb.Body.Position(); pos.X <= playerSpec.Transform.X {
		t.Fatalf("player position never advanced, still at %v", pos)
	}

	st, _ := ecs.Get(w, enemy, component.EnemyStateComponent)
	if st.Disabled || st.Current != component.StatePatrol {
		t.Fatalf("expected live patrolling enemy, got disabled=%v state=%q", st.Disabled, st.Current)
	}
}
