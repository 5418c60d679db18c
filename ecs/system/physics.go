package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PhysicsSystem owns the Chipmunk space. The space carries no gravity and
// every body gets an infinite moment, so controllers only ever deal with
// planar translation: position reads, velocity writes, and direct kinematic
// position sets.
type PhysicsSystem struct {
	space  *cp.Space
	bodies map[ecs.Entity]*bodyInfo
	delta  func() float64
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:  space,
		bodies: make(map[ecs.Entity]*bodyInfo),
		delta:  tickDelta,
	}
}

// Space returns the underlying Chipmunk space.
func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupBodies(w)
	ps.syncBodies(w)

	ps.space.Step(ps.delta())

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncBodies(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}

		if info := ps.bodies[e]; info != nil {
			if bodyComp.Body == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.shape
				_ = ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp)
			}
			continue
		}

		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		info := ps.createBody(transform, bodyComp)
		ps.bodies[e] = info

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		_ = ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp)
	}
}

func (ps *PhysicsSystem) createBody(transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment locks rotation at the source.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	var shape *cp.Shape
	if bodyComp.Radius > 0 {
		shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	} else {
		width := bodyComp.Width
		height := bodyComp.Height
		if width <= 0 || height <= 0 {
			width = 32
			height = 32
		}
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(0)
	shape.SetElasticity(0)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || bodyComp.Body == nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		_ = ecs.Add(w, e, component.TransformComponent, transform)
	}
}

func (ps *PhysicsSystem) cleanupBodies(w *ecs.World) {
	for e, info := range ps.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.bodies, e)
	}
}
