// Package propagator computes sound over-approximations of a
// feed-forward ReLU network's output box given an input box: the
// IBP, CROWN, Fast-Lin, and SDP bound propagators behind one
// Propagator interface, plus a string-keyed registry of constructors.
//
// What & Why:
//
//	Every propagator answers the same question — bound(input) →
//	output_box, a sound superset of {net.Eval(x) : x in input} — at
//	different cost/tightness points. IBP is the cheapest and loosest;
//	CROWN and Fast-Lin share a backward-substitution linear-relaxation
//	core and differ only in how they pick the ReLU lower-bound slope;
//	SDP is the tightest and the only variant that calls out to an
//	external convex solver.
//
// The registry mirrors the reference builder package's functional
// option plus constructor-registry pattern: callers select a
// propagator by name and configure it with Option values instead of
// constructing concrete types directly.
package propagator
