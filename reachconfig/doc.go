// Package reachconfig defines the in-memory configuration record the
// analyzer accepts and validates: plant/controller selection,
// propagator and partitioner type and parameters, horizon, direction,
// error-estimation toggle, and RNG seed.
//
// What & Why:
//
//	No pack repo wires a file- or flag-parsing library to an algorithm
//	package; configuration always arrives as a plain validated struct
//	the caller assembles. This package follows the same shape: it
//	defines and validates the in-memory Configuration, and leaves any
//	on-disk or command-line representation to an external loader.
package reachconfig
