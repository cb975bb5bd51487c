// Package vecbox implements the constraint algebra used throughout a
// closed-loop reachability pipeline: axis-aligned boxes and bounded
// polytopes, both satisfying the Constraint interface.
//
// What & Why:
//
//	Boxes are the pre/post state representation threaded through every
//	timestep of dynamics.Step; propagator.Bound also returns boxes, and
//	polytopes appear as the Uniform partitioner's output under the
//	"polytope" boundary type. Keeping both
//	behind one Constraint interface lets dynamics, propagator, and
//	closedloop operate generically without a type switch at every call
//	site, the same way matrix.Matrix lets callers ignore whether the
//	backing storage is Dense or another implementation.
//
// Complexity:
//
//	Box operations are O(n) in the dimension. Polytope Contains is
//	O(m*n) for m constraint rows; Sample uses rejection sampling from
//	the polytope's bounding box, so its expected cost depends on the
//	acceptance rate of the shape being sampled.
package vecbox
