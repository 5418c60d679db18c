package component

// Player holds movement and dash tuning loaded from the player prefab.
type Player struct {
	MoveSpeed    float64
	DashSpeed    float64
	DashDuration float64
	DashCooldown float64
	MinY         float64
}

var PlayerComponent = NewComponent[Player]()
