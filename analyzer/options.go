package analyzer

import (
	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/solver"
)

// Option configures a Forward or Backward run beyond what
// reachconfig.Configuration itself carries. Configuration stays a
// plain serializable record; collaborators that cannot be expressed
// as a string or number — a Solver implementation, a diagnostic
// sink — are supplied this way instead, mirroring how propagator and
// partitioner keep their own Option types separate from any
// configuration struct.
type Option func(*options)

type options struct {
	solver solver.Solver
	sink   diagnostics.Sink
}

func defaultOptions() options {
	return options{sink: diagnostics.NoopSink{}}
}

// WithSolver supplies the Solver collaborator the SDP propagator
// needs. Required whenever Configuration.PropagatorType is "SDP";
// ignored otherwise. Passing a nil solver panics, matching
// propagator.WithSolver's fail-fast construction-time check.
func WithSolver(s solver.Solver) Option {
	if s == nil {
		panic("analyzer: WithSolver requires a non-nil solver")
	}
	return func(o *options) { o.solver = s }
}

// WithDiagnosticSink routes numerical warnings, cell-split, and
// truncation events to sink instead of discarding them. Passing a
// nil sink panics.
func WithDiagnosticSink(sink diagnostics.Sink) Option {
	if sink == nil {
		panic("analyzer: WithDiagnosticSink requires a non-nil sink")
	}
	return func(o *options) { o.sink = sink }
}
