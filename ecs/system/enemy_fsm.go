package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type enemyAction func(ctx *enemyActionContext)

// enemyActionContext gives FSM actions controlled access to one enemy's
// tuning, runtime state, and physics body for the current tick.
type enemyActionContext struct {
	World       *ecs.World
	Entity      ecs.Entity
	Enemy       *component.Enemy
	State       *component.EnemyState
	TargetFound bool
	Target      cp.Vector
	Delta       float64

	GetPosition func() cp.Vector
	SetVelocity func(v cp.Vector)
	MoveTo      func(p cp.Vector)
}

type enemyStateDef struct {
	OnEnter []enemyAction
	While   []enemyAction
}

type enemyFSM struct {
	Initial     component.StateID
	States      map[component.StateID]enemyStateDef
	Transitions map[component.StateID]map[component.EventID]component.StateID
}

func stopMoving(ctx *enemyActionContext) {
	ctx.SetVelocity(cp.Vector{})
}

func cacheTargetPosition(ctx *enemyActionContext) {
	if !ctx.TargetFound {
		return
	}
	ctx.State.LastKnown = ctx.Target
}

func anchorPatrol(ctx *enemyActionContext) {
	ctx.State.PatrolCenter = ctx.GetPosition()
	ctx.State.PatrolAngle = 0
}

// patrolMove advances the phase angle and places the body directly on the
// circle around the patrol anchor. This is a kinematic move, not a velocity.
func patrolMove(ctx *enemyActionContext) {
	ctx.State.PatrolAngle += ctx.Delta * ctx.Enemy.PatrolSpeed
	ctx.MoveTo(ctx.State.PatrolCenter.Add(cp.Vector{
		X: math.Cos(ctx.State.PatrolAngle),
		Y: math.Sin(ctx.State.PatrolAngle),
	}.Mult(ctx.Enemy.CircleRadius)))
}

func investigateMove(ctx *enemyActionContext) {
	dir := ctx.State.LastKnown.Sub(ctx.GetPosition()).Normalize()
	ctx.SetVelocity(dir.Mult(ctx.Enemy.InvestigateSpeed))
}

// chaseMove steers at the live target and refreshes the last known position
// every tick, so losing sight later starts from the freshest point.
func chaseMove(ctx *enemyActionContext) {
	if !ctx.TargetFound {
		return
	}
	dir := ctx.Target.Sub(ctx.GetPosition()).Normalize()
	ctx.SetVelocity(dir.Mult(ctx.Enemy.ChaseSpeed))
	ctx.State.LastKnown = ctx.Target
}

func startSearchTimer(ctx *enemyActionContext) {
	ctx.State.SearchTimer = ctx.Enemy.SearchDuration
}

func tickSearchTimer(ctx *enemyActionContext) {
	ctx.State.SearchTimer -= ctx.Delta
}

func newEnemyFSM() *enemyFSM {
	return &enemyFSM{
		Initial: component.StatePatrol,
		States: map[component.StateID]enemyStateDef{
			component.StatePatrol: {
				OnEnter: []enemyAction{stopMoving, anchorPatrol},
				While:   []enemyAction{patrolMove},
			},
			component.StateInvestigate: {
				OnEnter: []enemyAction{stopMoving, cacheTargetPosition},
				While:   []enemyAction{investigateMove},
			},
			component.StateChase: {
				OnEnter: []enemyAction{stopMoving, cacheTargetPosition},
				While:   []enemyAction{chaseMove},
			},
			component.StateSearch: {
				OnEnter: []enemyAction{stopMoving, startSearchTimer},
				While:   []enemyAction{stopMoving, tickSearchTimer},
			},
		},
		Transitions: map[component.StateID]map[component.EventID]component.StateID{
			component.StatePatrol: {
				component.EventTargetClose:   component.StateChase,
				component.EventTargetNoticed: component.StateInvestigate,
			},
			component.StateInvestigate: {
				component.EventTargetClose: component.StateChase,
				component.EventTargetLost:  component.StateSearch,
			},
			component.StateChase: {
				component.EventTargetLost: component.StateSearch,
			},
			component.StateSearch: {
				component.EventTargetClose:   component.StateChase,
				component.EventTargetNoticed: component.StateInvestigate,
				component.EventSearchExpired: component.StatePatrol,
			},
		},
	}
}

// enemyTrigger picks the single trigger event for this tick. Checks run in
// priority order: the chase-distance check always wins, then the two forced
// far signals (investigate reached the last known point, search countdown
// expired), then the notice band, then plain loss of the target. A missing
// target counts as maximal distance.
func enemyTrigger(st *component.EnemyState, cfg *component.Enemy, pos cp.Vector, dist float64) component.EventID {
	if dist <= cfg.ChaseDistance {
		return component.EventTargetClose
	}
	if st.Current == component.StateInvestigate && pos.Distance(st.LastKnown) < cfg.InvestigateTolerance {
		return component.EventTargetLost
	}
	if st.Current == component.StateSearch && st.SearchTimer <= 0 {
		return component.EventSearchExpired
	}
	if dist <= cfg.NoticeDistance {
		return component.EventTargetNoticed
	}
	return component.EventTargetLost
}
