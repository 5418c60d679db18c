package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// BoundsSystem runs after the physics step and snaps the player back to the
// world-space lower Y bound. Position-only correction: velocity and X are
// left alone.
type BoundsSystem struct{}

func NewBoundsSystem() *BoundsSystem {
	return &BoundsSystem{}
}

func (b *BoundsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || bodyComp.Body == nil {
			continue
		}
		pos := bodyComp.Body.Position()
		if pos.Y < player.MinY {
			bodyComp.Body.SetPosition(cp.Vector{X: pos.X, Y: player.MinY})
		}
	}
}
