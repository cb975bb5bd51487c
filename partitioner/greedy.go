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

// GreedySimGuided is the stricter local-greedy sibling of SimGuided
// (spec §4.6): instead of splitting the cell with the largest
// bound-vs-sampled gap, it always splits the cell whose propagated
// output contributes the most new area to the aggregate hull of all
// active cells.
//
// A cell's new-area contribution depends on every other active
// cell's output, so it goes stale whenever a sibling is split. This
// package tracks that with a generation counter on each queue entry
// (grounded on the reference dijkstra package's lazy decrease-key):
// a popped entry whose generation lags the current epoch is
// recomputed and re-pushed instead of acted on directly.
type GreedySimGuided struct {
	cfg config
}

var _ Partitioner = GreedySimGuided{}

func newGreedySimGuided(opt Option) Partitioner {
	cfg := DefaultConfig()
	opt(&cfg)
	return GreedySimGuided{cfg: cfg}
}

// Name returns "GreedySimGuided".
func (GreedySimGuided) Name() string { return "GreedySimGuided" }

// BoundStep runs the greedy new-area refinement loop.
func (p GreedySimGuided) BoundStep(ctx context.Context, input vecbox.Constraint, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, diag Diagnostics) (vecbox.Constraint, []Cell, error) {
	inputBox, ok := input.(*vecbox.Box)
	if !ok {
		return nil, nil, fmt.Errorf("partitioner: GreedySimGuided: %w", ErrUnsupportedConstraintType)
	}
	if diag == nil {
		diag = diagnostics.NoopSink{}
	}

	root := &refineCell{input: inputBox}
	if err := propagateAndSample(ctx, root, prop, net, dyn, p.cfg.sampleCount, p.cfg); err != nil {
		return nil, nil, fmt.Errorf("partitioner: GreedySimGuided: %w", err)
	}

	active := []*refineCell{root}
	epoch := 0
	q := &cellQueue{{cell: root, priority: newAreaContribution(root, active), generation: epoch}}
	heap.Init(q)

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			diag.Emit(diagnostics.Event{Kind: diagnostics.EventTruncated, Layer: -1, Neuron: -1, Step: -1, Message: "GreedySimGuided: deadline exceeded between cell splits"})
			break
		}
		item := heap.Pop(q).(*cellItem)
		if item.generation != epoch {
			item.priority = newAreaContribution(item.cell, active)
			item.generation = epoch
			heap.Push(q, item)
			continue
		}
		if len(active) >= p.cfg.maxCells || item.priority < p.cfg.tolerance {
			break
		}

		cell := item.cell
		axis := longestAxis(cell.input)
		leftBox, rightBox := splitInHalf(cell.input, axis)
		active = removeCell(active, cell)

		epoch++
		for _, sub := range []*vecbox.Box{leftBox, rightBox} {
			child := &refineCell{input: sub}
			if err := propagateAndSample(ctx, child, prop, net, dyn, p.cfg.sampleCount, p.cfg); err != nil {
				return nil, nil, fmt.Errorf("partitioner: GreedySimGuided: %w", err)
			}
			active = append(active, child)
			heap.Push(q, &cellItem{cell: child, priority: newAreaContribution(child, active), generation: epoch})
		}
		// Every other entry already in the queue now carries a stale
		// generation and will be recomputed lazily the next time it
		// is popped, instead of being eagerly updated here.

		diag.Emit(diagnostics.Event{Kind: diagnostics.EventCellSplit, Layer: -1, Neuron: -1, Step: -1, Message: "GreedySimGuided: split along axis " + axisName(axis)})
	}

	outputs := make([]vecbox.Constraint, len(active))
	for i, rc := range active {
		outputs[i] = rc.output
	}
	hull, err := vecbox.Hull(outputs)
	if err != nil {
		return nil, nil, fmt.Errorf("partitioner: GreedySimGuided: %w", err)
	}

	cells := make([]Cell, len(active))
	for i, rc := range active {
		cells[i] = toCell(rc)
	}
	return hull, cells, nil
}

// newAreaContribution estimates how much of target's propagated
// output box lies outside the bounding hull of every other active
// cell's output: Volume(target) - Volume(target intersected with
// the others' hull).
func newAreaContribution(target *refineCell, active []*refineCell) float64 {
	others := make([]*vecbox.Box, 0, len(active)-1)
	for _, rc := range active {
		if rc != target {
			others = append(others, rc.output)
		}
	}
	targetVol, err := target.output.Volume()
	if err != nil || len(others) == 0 {
		if err != nil {
			return 0
		}
		return targetVol
	}

	othersHull := others[0]
	for _, b := range others[1:] {
		othersHull = boxBound(othersHull, b)
	}

	overlap := boxIntersectionVolume(target.output, othersHull)
	return targetVol - overlap
}

// boxBound returns the smallest box containing both a and b.
func boxBound(a, b *vecbox.Box) *vecbox.Box {
	lo := make([]float64, len(a.Lo))
	hi := make([]float64, len(a.Hi))
	for i := range lo {
		lo[i] = min(a.Lo[i], b.Lo[i])
		hi[i] = max(a.Hi[i], b.Hi[i])
	}
	return &vecbox.Box{Lo: lo, Hi: hi}
}

// boxIntersectionVolume returns the volume of a's intersection with
// b, 0 if they do not overlap.
func boxIntersectionVolume(a, b *vecbox.Box) float64 {
	vol := 1.0
	for i := range a.Lo {
		lo := max(a.Lo[i], b.Lo[i])
		hi := min(a.Hi[i], b.Hi[i])
		if lo >= hi {
			return 0
		}
		vol *= hi - lo
	}
	return vol
}
