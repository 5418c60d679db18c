package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID is the global numeric identity of a component kind.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the untyped identity of a component kind. World storage
// and queries key on it; the typed handle wraps it.
type ComponentKind struct {
	id ComponentID
}

func (k ComponentKind) ID() ComponentID {
	return k.id
}

func (k ComponentKind) Valid() bool {
	return k.id != 0
}

// ComponentHandle pairs a component type with its kind. Declare one package
// level handle per component:
//
//	var TransformComponent = NewComponent[Transform]()
type ComponentHandle[T any] struct {
	kind ComponentKind
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind{id: ComponentID(nextComponentID.Add(1))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind {
	return h.kind
}
