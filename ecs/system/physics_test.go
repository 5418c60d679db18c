package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestPhysicsCreatesAndStepsBody(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: 10, Y: 20})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Radius: 8, Mass: 1})

	ps := NewPhysicsSystem()
	ps.delta = func() float64 { return 0.5 }

	ps.Update(w)

	bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if bodyComp.Body == nil || bodyComp.Shape == nil {
		t.Fatalf("expected body and shape attached after first update")
	}
	if pos := bodyComp.Body.Position(); pos != (cp.Vector{X: 10, Y: 20}) {
		t.Fatalf("body spawned at %v, want (10,20)", pos)
	}

	// Velocity integrates with no gravity pulling on it.
	bodyComp.Body.SetVelocityVector(cp.Vector{X: 4, Y: 0})
	ps.Update(w)

	pos := bodyComp.Body.Position()
	if math.Abs(pos.X-12) > 1e-9 || math.Abs(pos.Y-20) > 1e-9 {
		t.Fatalf("body at %v after step, want (12,20)", pos)
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent)
	if math.Abs(transform.X-pos.X) > 1e-9 || math.Abs(transform.Y-pos.Y) > 1e-9 {
		t.Fatalf("transform %+v not synced to body position %v", transform, pos)
	}
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, component.Transform{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Width: 16, Height: 16, Mass: 1})

	ps := NewPhysicsSystem()
	ps.delta = func() float64 { return 1.0 / 60 }

	ps.Update(w)
	if len(ps.bodies) != 1 {
		t.Fatalf("expected one tracked body, got %d", len(ps.bodies))
	}

	w.DestroyEntity(e)
	ps.Update(w)
	if len(ps.bodies) != 0 {
		t.Fatalf("expected tracked body dropped after destroy, got %d", len(ps.bodies))
	}
}
