package partitioner

import (
	"context"

	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
)

// Partitioner refines one closed-loop step over an input set, either
// by delegating to a single propagator call (None) or by splitting
// the input into cells and re-propagating the ones that need it.
//
// BoundStep takes the controller network explicitly (alongside the
// propagator and plant) because propagator.Propagator.Bound itself
// requires it; passing it down here keeps that dependency visible at
// every call site instead of hiding it behind a closure.
type Partitioner interface {
	// Name identifies the partitioner variant.
	Name() string
	// BoundStep returns a sound over-approximation of the one-step
	// image of input, plus the leaf cells the decomposition produced
	// (always exactly one cell for None). ctx is checked between cell
	// splits (for the variants that split) and before each
	// propagator call.
	BoundStep(ctx context.Context, input vecbox.Constraint, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, diag Diagnostics) (vecbox.Constraint, []Cell, error)
}

var registry = map[string]func(Option) Partitioner{}

func init() {
	Register("None", func(opt Option) Partitioner { return newNone(opt) })
	Register("Uniform", func(opt Option) Partitioner { return newUniform(opt) })
	Register("SimGuided", func(opt Option) Partitioner { return newSimGuided(opt) })
	Register("GreedySimGuided", func(opt Option) Partitioner { return newGreedySimGuided(opt) })
}

// Register associates a constructor with a name. Registering the
// same name twice panics.
func Register(name string, ctor func(Option) Partitioner) {
	if _, exists := registry[name]; exists {
		panic("partitioner: " + name + ": " + ErrAlreadyRegistered.Error())
	}
	registry[name] = ctor
}

// New builds the named partitioner, applying opts over DefaultConfig.
func New(name string, opts ...Option) (Partitioner, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, &nameError{name: name, err: ErrUnknownPartitioner}
	}
	merged := func(c *config) {
		for _, opt := range opts {
			opt(c)
		}
	}
	return ctor(merged), nil
}

type nameError struct {
	name string
	err  error
}

func (e *nameError) Error() string { return "partitioner: " + e.name + ": " + e.err.Error() }
func (e *nameError) Unwrap() error { return e.err }
