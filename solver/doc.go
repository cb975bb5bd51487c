// Package solver defines the abstract convex-optimization collaborator
// used by the SDP bound propagator: a Solver interface plus a
// deterministic Stub implementation for tests.
//
// What & Why:
//
//	The SDP propagator formulates one semidefinite program per output
//	dimension and needs an external solver to evaluate it. No concrete
//	SDP solver library appears in the retrieved corpus's dependency
//	surface, and the component design marks the solver an external,
//	abstract collaborator, so this package exposes only the interface
//	and a configurable fake — the same shape the reference corpus uses
//	for its own external collaborators (an algorithm package depending
//	on *core.Graph's exported methods only, never a concrete storage
//	engine).
package solver
