// Package diagnostics defines the event hook surface shared by
// propagator, partitioner, and analyzer: a Sink interface that callers
// implement to observe non-fatal conditions (degenerate bound-propagator
// neurons, cell-splitting decisions) without the producing package
// depending on a concrete logging library.
//
// What & Why:
//
//	The reference corpus never logs from within an algorithm package; the
//	one extensibility point its root documentation advertises is a set of
//	OnVisit/OnEnqueue hooks a caller can attach. Sink generalizes that
//	idea into one method, Emit(Event), so every producer in this module
//	shares one hook shape instead of each package inventing its own.
package diagnostics
