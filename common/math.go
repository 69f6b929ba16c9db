package common

import "math"

const TwoPi = 2 * math.Pi

// Clamp limits v to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// WrapPhase subtracts one full turn once the phase passes 2π. It does not
// reset to zero, so the swing continues from where it was.
func WrapPhase(phase float64) float64 {
	if phase > TwoPi {
		phase -= TwoPi
	}
	return phase
}
