package analyzer

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/reachconfig"
	"github.com/lmarchetti/reachtube/vecbox"
)

// sampleCountForError is how many trajectories Forward samples from
// s0 to estimate per-step error when Configuration.EstimateError is
// set.
const sampleCountForError = 64

// Forward computes the T-step forward reachable tube [S0 ... S_T] by
// repeatedly applying the configured partitioner's BoundStep.
func Forward(ctx context.Context, cfg reachconfig.Configuration, p dynamics.Plant, net *ffnet.Network, s0 vecbox.Constraint, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.Direction != reachconfig.DirectionForward {
		return Result{}, fmt.Errorf("analyzer: %w", ErrUnsupportedDirection)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	prop, err := buildPropagator(cfg, o)
	if err != nil {
		return Result{}, err
	}
	part, err := buildPartitioner(cfg, o)
	if err != nil {
		return Result{}, err
	}

	tube := []vecbox.Constraint{s0}
	cellsPerStep := []int{}
	truncated := false

	current := s0
	for t := 0; t < cfg.TMax; t++ {
		if err := ctx.Err(); err != nil {
			truncated = true
			o.sink.Emit(diagnostics.Event{Kind: diagnostics.EventTruncated, Layer: -1, Neuron: -1, Step: t, Message: "deadline exceeded between timesteps"})
			break
		}

		next, cells, err := part.BoundStep(ctx, current, prop, net, p, o.sink)
		if err != nil {
			return Result{
				Tube:         tube,
				CellsPerStep: cellsPerStep,
				RuntimeMS:    time.Since(start).Milliseconds(),
				Truncated:    truncated,
			}, fmt.Errorf("analyzer: step %d: %w", t, err)
		}

		tube = append(tube, next)
		cellsPerStep = append(cellsPerStep, len(cells))
		current = next
	}

	result := Result{
		Tube:         tube,
		CellsPerStep: cellsPerStep,
		RuntimeMS:    time.Since(start).Milliseconds(),
		Truncated:    truncated,
	}

	if cfg.EstimateError {
		perStep, err := forwardSampledError(s0, net, p, len(tube)-1, cfg.Seed, tube)
		if err != nil {
			return result, fmt.Errorf("analyzer: %w", err)
		}
		result.PerStepError = perStep
	}

	return result, nil
}

// forwardSampledError draws sampleCountForError trajectories from s0,
// simulates each for stepsComputed steps, and compares the sampled
// per-step range against the corresponding tube entry as a box-area
// ratio: tubeVolume / sampledVolume (spec's avg_error basis).
func forwardSampledError(s0 vecbox.Constraint, net *ffnet.Network, p dynamics.Plant, stepsComputed int, seed int64, tube []vecbox.Constraint) ([]float64, error) {
	if stepsComputed <= 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(seed))
	starts, err := s0.Sample(sampleCountForError, rng)
	if err != nil {
		return nil, err
	}

	n := s0.Dim()
	lo := make([][]float64, stepsComputed)
	hi := make([][]float64, stepsComputed)
	for t := 0; t < stepsComputed; t++ {
		lo[t] = make([]float64, n)
		hi[t] = make([]float64, n)
		for i := 0; i < n; i++ {
			lo[t][i] = math.Inf(1)
			hi[t][i] = math.Inf(-1)
		}
	}

	for _, x0 := range starts {
		traj, err := dynamics.Simulate(p, x0, net, stepsComputed)
		if err != nil {
			return nil, err
		}
		for t := 0; t < stepsComputed; t++ {
			x := traj[t+1]
			for i := 0; i < n; i++ {
				if x[i] < lo[t][i] {
					lo[t][i] = x[i]
				}
				if x[i] > hi[t][i] {
					hi[t][i] = x[i]
				}
			}
		}
	}

	perStep := make([]float64, stepsComputed)
	for t := 0; t < stepsComputed; t++ {
		sampledBox, err := vecbox.NewBox(lo[t], hi[t])
		if err != nil {
			return nil, err
		}
		sampledVol, err := sampledBox.Volume()
		if err != nil {
			return nil, err
		}
		tubeVol, err := tube[t+1].Volume()
		if err != nil {
			return nil, err
		}
		if sampledVol <= 0 {
			perStep[t] = tubeVol
			continue
		}
		perStep[t] = tubeVol / sampledVol
	}

	return perStep, nil
}
