package system

import "github.com/hajimehoshi/ebiten/v2"

// tickDelta returns the elapsed time of one update tick in seconds. Before
// the first frame ActualTPS reports zero, so fall back to the default 60 TPS.
func tickDelta() float64 {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		return 1.0 / 60.0
	}
	return 1 / tps
}
