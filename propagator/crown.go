package propagator

// crownSlope picks the ReLU lower-relaxation slope adaptively: 1
// when the neuron's upper extent dominates its lower extent in
// magnitude, 0 otherwise. This is the CROWN policy; it keeps the
// relaxation tangent to whichever side of the ReLU kink has more
// weight in the eventual bound.
func crownSlope(l, u, _ float64) float64 {
	if u >= -l {
		return 1
	}
	return 0
}
