// Package partitioner refines a single closed-loop step by splitting
// the input set into cells and re-propagating the worst offenders,
// instead of bounding the whole input set at once: None, Uniform,
// SimGuided, and GreedySimGuided behind one Partitioner interface,
// plus a string-keyed registry of constructors.
//
// What & Why:
//
//	A coarse propagator call over a wide input box is sound but loose.
//	Splitting the box into cells and bounding each separately tightens
//	the result at the cost of more propagator/dynamics calls. The
//	simulation-guided variants spend that budget where it matters most:
//	the cell whose propagated bound diverges furthest from a sampled
//	estimate of the true reachable set.
//
// The simulation-guided variants' cell queue is grounded directly on
// the reference dijkstra package's container/heap nodePQ, with Less
// flipped into a max-heap of pointers (largest priority first), lazy
// staleness tracked by a generation counter instead
// of a heap-internal decrease-key.
package partitioner
