package ecs

import "github.com/milk9111/topdown/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	storages map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		storages: make(map[component.ComponentID]*SparseSet),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, set := range w.storages {
		set.Remove(e.ID)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

func (w *World) storage(k component.ComponentKind) *SparseSet {
	set, ok := w.storages[k.ID()]
	if !ok {
		set = &SparseSet{}
		w.storages[k.ID()] = set
	}
	return set
}

// AddComponent sets the component value of kind k for e.
func (w *World) AddComponent(e Entity, k component.ComponentKind, v any) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.storage(k).Set(e.ID, v)
	return nil
}

// GetComponent returns the component value of kind k for e.
func (w *World) GetComponent(e Entity, k component.ComponentKind) (any, bool) {
	if w == nil || !w.IsAlive(e) || !k.Valid() {
		return nil, false
	}
	set, ok := w.storages[k.ID()]
	if !ok || !set.Has(e.ID) {
		return nil, false
	}
	return set.Get(e.ID), true
}

// RemoveComponent deletes the component of kind k from e.
func (w *World) RemoveComponent(e Entity, k component.ComponentKind) bool {
	if w == nil || !w.IsAlive(e) || !k.Valid() {
		return false
	}
	set, ok := w.storages[k.ID()]
	if !ok {
		return false
	}
	return set.Remove(e.ID)
}

// HasComponent reports whether e carries a component of kind k.
func (w *World) HasComponent(e Entity, k component.ComponentKind) bool {
	if w == nil || !w.IsAlive(e) || !k.Valid() {
		return false
	}
	set, ok := w.storages[k.ID()]
	return ok && set.Has(e.ID)
}

// Query returns entities carrying every given component kind.
func (w *World) Query(kinds ...component.ComponentKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set, ok := w.storages[k.ID()]
		if !ok || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	ids := intersectEntities(sets)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entity{ID: id, Gen: w.entities.gen[id-1]})
	}
	return out
}

// First returns any one entity carrying the given kind.
func (w *World) First(k component.ComponentKind) (Entity, bool) {
	if w == nil {
		return Entity{}, false
	}
	set, ok := w.storages[k.ID()]
	if !ok || set.Len() == 0 {
		return Entity{}, false
	}
	id := set.Entities()[0]
	return Entity{ID: id, Gen: w.entities.gen[id-1]}, true
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then flushes the event queue.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
