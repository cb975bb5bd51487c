package propagator

import (
	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/solver"
)

// Option customizes a propagator constructor before it builds the
// concrete Propagator value. Unknown options are silently ignored by
// constructors that do not need them, mirroring the reference
// builder package's tolerant BuilderOption application.
type Option func(*config)

type config struct {
	solver  solver.Solver
	epsilon float64
	sink    diagnostics.Sink
}

// DefaultConfig returns the baseline configuration: no solver
// attached, degenerate-neuron epsilon at the spec's 1e-12, and a
// no-op diagnostics sink.
func DefaultConfig() config {
	return config{epsilon: 1e-12, sink: diagnostics.NoopSink{}}
}

// WithSolver attaches the convex-solver collaborator used by the SDP
// propagator. Passing nil panics: like the reference builder
// package's option constructors, a nil collaborator is a programmer
// error to surface immediately, not a runtime condition to recover
// from.
func WithSolver(s solver.Solver) Option {
	if s == nil {
		panic("propagator: WithSolver(nil)")
	}
	return func(c *config) {
		c.solver = s
	}
}

// WithEpsilon overrides the degenerate-neuron numerical threshold
// used by CROWN and Fast-Lin (U - L <= epsilon treated as stable).
// Panics on a negative epsilon.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("propagator: WithEpsilon(eps<0)")
	}
	return func(c *config) {
		c.epsilon = eps
	}
}

// WithDiagnosticSink attaches a diagnostics.Sink that CROWN and
// Fast-Lin use to report degenerate-neuron numerical warnings.
// Passing nil panics, matching the reference builder package's
// nil-collaborator policy.
func WithDiagnosticSink(sink diagnostics.Sink) Option {
	if sink == nil {
		panic("propagator: WithDiagnosticSink(nil)")
	}
	return func(c *config) {
		c.sink = sink
	}
}
