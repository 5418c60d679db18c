package component

// Enemy holds behavior tuning loaded from the enemy prefab.
// NoticeDistance must be strictly greater than ChaseDistance; the prefab
// loader rejects configs that violate this.
type Enemy struct {
	PatrolSpeed          float64
	CircleRadius         float64
	InvestigateSpeed     float64
	ChaseSpeed           float64
	NoticeDistance       float64
	ChaseDistance        float64
	SearchDuration       float64
	InvestigateTolerance float64
	Hook                 string
}

var EnemyComponent = NewComponent[Enemy]()
