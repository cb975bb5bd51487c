package partitioner

import (
	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/vecbox"
)

// Diagnostics is the sink partitioners report cell-split events
// through, aliased from the shared diagnostics package so that
// Partitioner's signature never has to import analyzer (which itself
// imports partitioner).
type Diagnostics = diagnostics.Sink

// Cell is one region of a partitioner's decomposition of the current
// input set: the sub-region itself, its propagated one-step bound,
// an estimate of the true reachable range sampled from trajectories,
// and (for the simulation-guided variants) the gap between the two.
type Cell struct {
	InputSet         vecbox.Constraint
	PropagatedOutput *vecbox.Box
	SampledRange     *vecbox.Box
	// ErrorEstimate is nil when no sampled comparison was made (None,
	// Uniform); otherwise it is the elementwise excess of
	// PropagatedOutput over SampledRange, axis by axis.
	ErrorEstimate *vecbox.Box
}
