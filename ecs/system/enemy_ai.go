package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// EnemyAISystem drives the four-state behavior machine for every enemy:
// patrol a circle, investigate the last known target position, chase the
// live target, search in place until a countdown expires. The transition
// step runs exactly once per enemy per tick, driven by a single tagged
// trigger event from enemyTrigger.
type EnemyAISystem struct {
	fsm   *enemyFSM
	delta func() float64
}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{
		fsm:   newEnemyFSM(),
		delta: tickDelta,
	}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var target cp.Vector
	targetFound := false
	if playerEnt, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if pb, ok := ecs.Get(w, playerEnt, component.PhysicsBodyComponent); ok && pb.Body != nil {
			target = pb.Body.Position()
			targetFound = true
		} else if t, ok := ecs.Get(w, playerEnt, component.TransformComponent); ok {
			target = cp.Vector{X: t.X, Y: t.Y}
			targetFound = true
		}
	}

	dt := s.delta()

	entities := w.Query(
		component.EnemyTagComponent.Kind(),
		component.EnemyComponent.Kind(),
		component.EnemyStateComponent.Kind(),
	)
	for _, ent := range entities {
		cfg, ok := ecs.Get(w, ent, component.EnemyComponent)
		if !ok {
			continue
		}
		st, ok := ecs.Get(w, ent, component.EnemyStateComponent)
		if !ok {
			continue
		}
		if st.Disabled {
			continue
		}

		bodyComp, ok := ecs.Get(w, ent, component.PhysicsBodyComponent)
		if !ok {
			// Missing required dependency: report once, then go inert.
			log.Printf("enemy %v: no physics body attached, controller disabled", ent)
			st.Disabled = true
			_ = ecs.Add(w, ent, component.EnemyStateComponent, st)
			continue
		}
		if bodyComp.Body == nil {
			// Physics has not built the body yet; it runs later in the
			// frame, so pick this enemy up next tick.
			continue
		}
		body := bodyComp.Body

		ctx := &enemyActionContext{
			World:       w,
			Entity:      ent,
			Enemy:       &cfg,
			State:       &st,
			TargetFound: targetFound,
			Target:      target,
			Delta:       dt,
			GetPosition: body.Position,
			SetVelocity: body.SetVelocityVector,
			MoveTo:      body.SetPosition,
		}

		if st.Current == "" {
			st.Current = s.fsm.Initial
			applyEnemyActions(s.fsm.States[st.Current].OnEnter, ctx)
			log.Printf("enemy %v: online, %s state", ent, st.Current)
		}

		applyEnemyActions(s.fsm.States[st.Current].While, ctx)

		dist := math.Inf(1)
		if targetFound {
			dist = body.Position().Distance(target)
		}
		trigger := enemyTrigger(&st, &cfg, body.Position(), dist)
		if next, ok := s.fsm.Transitions[st.Current][trigger]; ok && next != st.Current {
			from := st.Current
			st.Current = next
			applyEnemyActions(s.fsm.States[next].OnEnter, ctx)
			log.Printf("enemy %v: %s -> %s (%s, dist=%.1f)", ent, from, next, trigger, dist)
			w.Events().Push(ecs.Event{
				Type: component.EnemyTransitionEvent,
				Data: component.EnemyTransition{
					Entity:   ent.ID,
					From:     from,
					To:       next,
					Trigger:  trigger,
					Distance: dist,
				},
			})
		}

		_ = ecs.Add(w, ent, component.EnemyStateComponent, st)
	}
}

func applyEnemyActions(actions []enemyAction, ctx *enemyActionContext) {
	for _, a := range actions {
		if a != nil {
			a(ctx)
		}
	}
}
