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

// Uniform splits the input box into an equal-width grid (counts[i]
// parts along axis i), bounds each cell independently, and returns
// the hull of every cell's propagated output: a box under the "box"
// boundary type, a polytope enclosing the union of the cells' outputs
// under "polytope".
type Uniform struct {
	counts       []int
	boundaryType string
}

var _ Partitioner = Uniform{}

func newUniform(opt Option) Partitioner {
	cfg := DefaultConfig()
	opt(&cfg)
	return Uniform{counts: cfg.numPartitions, boundaryType: cfg.boundaryType}
}

// Name returns "Uniform".
func (Uniform) Name() string { return "Uniform" }

// BoundStep grids input, propagates each grid cell independently via
// closedloop.Step, and hulls the per-cell outputs according to the
// configured boundary type.
func (u Uniform) BoundStep(ctx context.Context, input vecbox.Constraint, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, diag Diagnostics) (vecbox.Constraint, []Cell, error) {
	inputBox, ok := input.(*vecbox.Box)
	if !ok {
		return nil, nil, fmt.Errorf("partitioner: Uniform: %w", ErrUnsupportedConstraintType)
	}
	counts := u.counts
	if counts == nil {
		counts = make([]int, inputBox.Dim())
		for i := range counts {
			counts[i] = 1
		}
	}
	if len(counts) != inputBox.Dim() {
		return nil, nil, fmt.Errorf("partitioner: Uniform: %w", ErrPartitionCountMismatch)
	}

	grid := gridSplit(inputBox, counts)
	cells := make([]Cell, 0, len(grid))
	outputs := make([]vecbox.Constraint, 0, len(grid))

	for _, sub := range grid {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("partitioner: Uniform: %w", err)
		}
		out, err := closedloop.Step(ctx, sub, prop, net, dyn)
		if err != nil {
			return nil, nil, fmt.Errorf("partitioner: Uniform: %w", err)
		}
		outBox, ok := out.(*vecbox.Box)
		if !ok {
			return nil, nil, fmt.Errorf("partitioner: Uniform: %w", ErrUnsupportedConstraintType)
		}
		cells = append(cells, Cell{InputSet: sub, PropagatedOutput: outBox})

		if u.boundaryType == "polytope" {
			poly, err := vecbox.BoxToPolytope(outBox)
			if err != nil {
				return nil, nil, fmt.Errorf("partitioner: Uniform: %w", err)
			}
			outputs = append(outputs, poly)
		} else {
			outputs = append(outputs, out)
		}
	}

	hull, err := vecbox.Hull(outputs)
	if err != nil {
		return nil, nil, fmt.Errorf("partitioner: Uniform: %w", err)
	}
	return hull, cells, nil
}
