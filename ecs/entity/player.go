package entity

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewPlayer builds the player entity from its prefab spec.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
	}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Radius: spec.Collider.Radius,
		Mass:   spec.Collider.Mass,
	}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.DashComponent, component.Dash{Phase: component.DashReady}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ApplyPlayerSpec(w, e, spec); err != nil {
		return ecs.Entity{}, err
	}

	return e, nil
}

// ApplyPlayerSpec writes the spec's tuning onto an existing player entity.
// Used both at build time and on prefab hot reload.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	return ecs.Add(w, e, component.PlayerComponent, component.Player{
		MoveSpeed:    spec.MoveSpeed,
		DashSpeed:    spec.DashSpeed,
		DashDuration: spec.DashDuration,
		DashCooldown: spec.DashCooldown,
		MinY:         spec.MinY,
	})
}
