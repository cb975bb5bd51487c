package partitioner

import (
	"context"
	"fmt"
	"math"

	"github.com/lmarchetti/reachtube/closedloop"
	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
)

// refineCell is the mutable working state the simulation-guided
// variants carry for one leaf of their decomposition: its input
// region plus the last computed propagated/sampled bounds.
type refineCell struct {
	input      *vecbox.Box
	output     *vecbox.Box
	sampled    *vecbox.Box
	errBox     *vecbox.Box
	generation int
}

// propagateAndSample fills in a refineCell's output, sampled, and
// errBox fields: output is the sound closedloop.Step bound, sampled
// is the bounding box of sampleCount one-step trajectory images
// drawn uniformly from input, and errBox is their elementwise
// excess (output minus sampled).
func propagateAndSample(ctx context.Context, rc *refineCell, prop propagator.Propagator, net *ffnet.Network, dyn dynamics.Plant, sampleCount int, cfg config) error {
	out, err := closedloop.Step(ctx, rc.input, prop, net, dyn)
	if err != nil {
		return fmt.Errorf("partitioner: %w", err)
	}
	outBox, ok := out.(*vecbox.Box)
	if !ok {
		return fmt.Errorf("partitioner: %w", ErrUnsupportedConstraintType)
	}

	sampled, err := sampleOneStepRange(rc.input, net, dyn, sampleCount, cfg)
	if err != nil {
		return err
	}

	rc.output = outBox
	rc.sampled = sampled
	rc.errBox = &vecbox.Box{
		Lo: elementwiseDiff(outBox.Lo, sampled.Lo),
		Hi: elementwiseDiff(outBox.Hi, sampled.Hi),
	}
	return nil
}

// sampleOneStepRange draws sampleCount points from input, drives
// each one step through the plant under net's control, and returns
// the bounding box of the resulting next states — an estimate of the
// true one-step reachable set.
func sampleOneStepRange(input *vecbox.Box, net *ffnet.Network, dyn dynamics.Plant, sampleCount int, cfg config) (*vecbox.Box, error) {
	points, err := input.Sample(sampleCount, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("partitioner: %w", err)
	}

	n, _ := dyn.Dims()
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}

	for _, x := range points {
		traj, err := dynamics.Simulate(dyn, x, net, 1)
		if err != nil {
			return nil, fmt.Errorf("partitioner: %w", err)
		}
		y := traj[1]
		for i := range y {
			if y[i] < lo[i] {
				lo[i] = y[i]
			}
			if y[i] > hi[i] {
				hi[i] = y[i]
			}
		}
	}
	return &vecbox.Box{Lo: lo, Hi: hi}, nil
}

// elementwiseDiff returns a-b elementwise.
func elementwiseDiff(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// scalarGap reduces a refineCell's bound-vs-sampled comparison to a
// single priority value: the total excess width of output over
// sampled, summed across axes.
func scalarGap(rc *refineCell) float64 {
	var sum float64
	for i := range rc.output.Lo {
		outputWidth := rc.output.Hi[i] - rc.output.Lo[i]
		sampledWidth := rc.sampled.Hi[i] - rc.sampled.Lo[i]
		sum += outputWidth - sampledWidth
	}
	return sum
}

func toCell(rc *refineCell) Cell {
	return Cell{
		InputSet:         rc.input,
		PropagatedOutput: rc.output,
		SampledRange:     rc.sampled,
		ErrorEstimate:    rc.errBox,
	}
}
