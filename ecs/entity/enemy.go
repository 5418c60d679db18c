package entity

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewEnemy builds an enemy entity from its prefab spec. The behavior state
// starts empty; the AI system initializes it to patrol on the first tick.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.EnemyTagComponent, component.EnemyTag{}); err != nil {
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
	if err := ecs.Add(w, e, component.EnemyStateComponent, component.EnemyState{}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ApplyEnemySpec(w, e, spec); err != nil {
		return ecs.Entity{}, err
	}

	return e, nil
}

// ApplyEnemySpec writes the spec's tuning onto an existing enemy entity.
// Used both at build time and on prefab hot reload.
func ApplyEnemySpec(w *ecs.World, e ecs.Entity, spec *prefabs.EnemySpec) error {
	return ecs.Add(w, e, component.EnemyComponent, component.Enemy{
		PatrolSpeed:          spec.PatrolSpeed,
		CircleRadius:         spec.CircleRadius,
		InvestigateSpeed:     spec.InvestigateSpeed,
		ChaseSpeed:           spec.ChaseSpeed,
		NoticeDistance:       spec.NoticeDistance,
		ChaseDistance:        spec.ChaseDistance,
		SearchDuration:       spec.SearchDuration,
		InvestigateTolerance: spec.InvestigateTolerance,
		Hook:                 spec.Hook,
	})
}
