// Package dynamics implements discrete-time affine plant models with
// actuator saturation and the one-step reachability update used by
// closedloop.Step.
//
// What & Why:
//
//	A Plant describes x_{k+1} = A*x_k + B*clip(u_k, uMin, uMax) + c at a
//	fixed sample time. Step lifts this single-trajectory update to sets:
//	S' = A*S (+) B*clip(U) (+) {c}, composing vecbox.AffineImage and
//	vecbox.MinkowskiAddBox. Simulate drives single trajectories through
//	a concrete controller network for testing and diagnostics sampling.
//
// Complexity:
//
//	Step is O(n^2 + n*m) for an n-state, m-input plant (two affine
//	images plus a Minkowski sum). Simulate is O(T * (n^2 + eval cost))
//	over T steps.
package dynamics
