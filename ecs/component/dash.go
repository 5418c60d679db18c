package component

// DashPhase is the explicit tri-state of the dash ability. The sequence is
// strictly Ready -> Dashing -> CoolingDown -> Ready.
type DashPhase int

const (
	DashReady DashPhase = iota
	DashDashing
	DashCoolingDown
)

func (p DashPhase) String() string {
	switch p {
	case DashReady:
		return "ready"
	case DashDashing:
		return "dashing"
	case DashCoolingDown:
		return "cooling_down"
	default:
		return "unknown"
	}
}

// Dash tracks the dash phase, the countdown within the current phase, and
// the locked dash direction. Timer counts down in seconds and transitions
// fire when it crosses zero.
type Dash struct {
	Phase DashPhase
	Timer float64
	DirX  float64
	DirY  float64
}

var DashComponent = NewComponent[Dash]()
