package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PlayerControllerSystem turns the frame's input sample into a velocity and
// runs the dash countdowns. The dash is a strict one-shot sequence, Ready ->
// Dashing -> CoolingDown -> Ready, driven by explicit timers instead of a
// suspended task; while Dashing the movement input is ignored and the locked
// dash direction sets the velocity.
type PlayerControllerSystem struct {
	delta func() float64
	inert map[ecs.Entity]bool
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{
		delta: tickDelta,
		inert: make(map[ecs.Entity]bool),
	}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := p.delta()

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.DashComponent.Kind(),
	)
	for _, e := range entities {
		if p.inert[e] {
			continue
		}
		player, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok {
			continue
		}
		input, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		dash, ok := ecs.Get(w, e, component.DashComponent)
		if !ok {
			continue
		}

		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			// Missing required dependency: report once, then go inert.
			log.Printf("player %v: no physics body attached, controller disabled", e)
			p.inert[e] = true
			continue
		}
		if bodyComp.Body == nil {
			// Physics has not built the body yet; it runs later in the
			// frame, so pick this player up next tick.
			continue
		}
		body := bodyComp.Body

		moving := input.MoveX != 0 || input.MoveY != 0

		switch dash.Phase {
		case component.DashReady:
			// Dash starts only on the key edge with movement held; a request
			// with no direction is dropped, never queued.
			if input.DashPressed && moving {
				dash.Phase = component.DashDashing
				dash.Timer = player.DashDuration
				dash.DirX = input.MoveX
				dash.DirY = input.MoveY
			}
		case component.DashDashing:
			dash.Timer -= dt
			if dash.Timer <= 0 {
				dash.Phase = component.DashCoolingDown
				dash.Timer = player.DashCooldown
				if !moving {
					body.SetVelocityVector(cp.Vector{})
				}
			}
		case component.DashCoolingDown:
			dash.Timer -= dt
			if dash.Timer <= 0 {
				dash.Phase = component.DashReady
				dash.Timer = 0
			}
		}

		if dash.Phase == component.DashDashing {
			body.SetVelocityVector(cp.Vector{X: dash.DirX, Y: dash.DirY}.Mult(player.DashSpeed))
		} else {
			body.SetVelocityVector(cp.Vector{X: input.MoveX, Y: input.MoveY}.Mult(player.MoveSpeed))
		}

		_ = ecs.Add(w, e, component.DashComponent, dash)
	}
}
