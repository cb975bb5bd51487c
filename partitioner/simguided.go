package partitioner

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
)

// SimGuided repeatedly splits the cell whose propagated bound
// diverges furthest from a sampled estimate of the true reachable
// set (spec §4.6), until the cell-count budget is spent or the
// worst gap falls under the configured tolerance.
type SimGuided struct {
	cfg config
}

var _ Partitioner = SimGuided{}

func newSimGuided(opt Option) Partitioner {
	cfg := DefaultConfig()
	opt(&cfg)
	return SimGuided{cfg: cfg}
}

// Name returns "SimGuided".
func (SimGuided) Name() string { return "SimGuided" }

// BoundStep runs the simulation-guided refinement loop and returns
// the hull of every leaf cell's propagated output.
func (p SimGuided) BoundStep(ctx context.Context, input vecbox.Constraint, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, diag Diagnostics) (vecbox.Constraint, []Cell, error) {
	inputBox, ok := input.(*vecbox.Box)
	if !ok {
		return nil, nil, fmt.Errorf("partitioner: SimGuided: %w", ErrUnsupportedConstraintType)
	}
	if diag == nil {
		diag = diagnostics.NoopSink{}
	}

	active, outputs, err := refineLoop(ctx, inputBox, prop, net, dyn, p.cfg, diag, "SimGuided")
	if err != nil {
		return nil, nil, err
	}

	hull, err := vecbox.Hull(outputs)
	if err != nil {
		return nil, nil, fmt.Errorf("partitioner: SimGuided: %w", err)
	}

	cells := make([]Cell, len(active))
	for i, rc := range active {
		cells[i] = toCell(rc)
	}
	return hull, cells, nil
}

// refineLoop is SimGuided's main loop: it repeatedly splits the cell
// with the largest scalarGap until the budget or tolerance stops it.
// GreedySimGuided runs its own loop in greedy.go.
func refineLoop(ctx context.Context, inputBox *vecbox.Box, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, cfg config, diag Diagnostics, name string) ([]*refineCell, []vecbox.Constraint, error) {
	root := &refineCell{input: inputBox}
	if err := propagateAndSample(ctx, root, prop, net, dyn, cfg.sampleCount, cfg); err != nil {
		return nil, nil, fmt.Errorf("partitioner: %s: %w", name, err)
	}

	active := []*refineCell{root}
	q := &cellQueue{{cell: root, priority: scalarGap(root)}}
	heap.Init(q)

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			diag.Emit(diagnostics.Event{Kind: diagnostics.EventTruncated, Layer: -1, Neuron: -1, Step: -1, Message: name + ": deadline exceeded between cell splits"})
			break
		}
		top := (*q)[0]
		if len(active) >= cfg.maxCells || top.priority < cfg.tolerance {
			break
		}
		item := heap.Pop(q).(*cellItem)
		cell := item.cell

		axis := longestAxis(cell.input)
		leftBox, rightBox := splitInHalf(cell.input, axis)
		active = removeCell(active, cell)

		for _, sub := range []*vecbox.Box{leftBox, rightBox} {
			child := &refineCell{input: sub}
			if err := propagateAndSample(ctx, child, prop, net, dyn, cfg.sampleCount, cfg); err != nil {
				return nil, nil, fmt.Errorf("partitioner: %s: %w", name, err)
			}
			active = append(active, child)
			heap.Push(q, &cellItem{cell: child, priority: scalarGap(child)})
		}

		diag.Emit(diagnostics.Event{Kind: diagnostics.EventCellSplit, Layer: -1, Neuron: -1, Step: -1, Message: name + ": split along axis " + axisName(axis)})
	}

	outputs := make([]vecbox.Constraint, len(active))
	for i, rc := range active {
		outputs[i] = rc.output
	}
	return active, outputs, nil
}

func removeCell(active []*refineCell, target *refineCell) []*refineCell {
	out := active[:0]
	for _, rc := range active {
		if rc != target {
			out = append(out, rc)
		}
	}
	return out
}

func axisName(axis int) string {
	return fmt.Sprintf("%d", axis)
}
