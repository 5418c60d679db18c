package component

// Input stores the per-frame input sample for an entity. MoveX/MoveY form a
// unit-length direction (or zero when no axis is held) so diagonal movement
// is not faster than cardinal movement.
type Input struct {
	MoveX       float64
	MoveY       float64
	DashPressed bool
}

var InputComponent = NewComponent[Input]()
