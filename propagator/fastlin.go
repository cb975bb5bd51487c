package propagator

// fastLinSlope fixes the ReLU lower-relaxation slope to the
// upper-bound slope, trading CROWN's adaptivity for a cheaper,
// uniform relaxation line.
func fastLinSlope(_, _, upperSlope float64) float64 {
	return upperSlope
}
