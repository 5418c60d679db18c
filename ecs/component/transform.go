package component

// Transform is the render-facing world position, synced from the physics
// body after every physics step.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
