package partitioner

import (
	"context"
	"fmt"

	"github.com/lmarchetti/reachtube/closedloop"
	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
)

// None delegates the entire input set to a single closedloop.Step
// call: no splitting, one cell.
type None struct{}

var _ Partitioner = None{}

func newNone(opt Option) Partitioner {
	_ = opt
	return None{}
}

// Name returns "None".
func (None) Name() string { return "None" }

// BoundStep calls closedloop.Step once over input and reports it as
// a single Cell with no sampled comparison.
func (None) BoundStep(ctx context.Context, input vecbox.Constraint, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, diag Diagnostics) (vecbox.Constraint, []Cell, error) {
	out, err := closedloop.Step(ctx, input, prop, net, dyn)
	if err != nil {
		return nil, nil, fmt.Errorf("partitioner: None: %w", err)
	}
	outBox, ok := out.(*vecbox.Box)
	if !ok {
		return nil, nil, fmt.Errorf("partitioner: None: %w", ErrUnsupportedConstraintType)
	}
	return out, []Cell{{InputSet: input, PropagatedOutput: outBox}}, nil
}
