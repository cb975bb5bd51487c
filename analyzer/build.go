package analyzer

import (
	"errors"
	"fmt"

	"github.com/lmarchetti/reachtube/partitioner"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/reachconfig"
)

// ErrMissingSolver is returned when Configuration.PropagatorType is
// "SDP" but no WithSolver option was supplied.
var ErrMissingSolver = errors.New("analyzer: SDP propagator requires WithSolver")

func buildPropagator(cfg reachconfig.Configuration, o options) (propagator.Propagator, error) {
	if cfg.PropagatorType == reachconfig.PropagatorSDP && o.solver == nil {
		return nil, ErrMissingSolver
	}

	var opts []propagator.Option
	if o.solver != nil {
		opts = append(opts, propagator.WithSolver(o.solver))
	}
	opts = append(opts, propagator.WithDiagnosticSink(o.sink))

	p, err := propagator.New(cfg.PropagatorType, opts...)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return p, nil
}

func buildPartitioner(cfg reachconfig.Configuration, o options) (partitioner.Partitioner, error) {
	var opts []partitioner.Option
	if cfg.PartitionerType == reachconfig.PartitionerUniform && cfg.NumPartitions != nil {
		opts = append(opts, partitioner.WithNumPartitions(cfg.NumPartitions))
	}
	if cfg.PartitionerType == reachconfig.PartitionerSimGuided || cfg.PartitionerType == reachconfig.PartitionerGreedySimGuided {
		if cfg.PartitionBudget > 0 {
			opts = append(opts, partitioner.WithMaxCells(cfg.PartitionBudget))
		}
	}
	opts = append(opts, partitioner.WithSeed(cfg.Seed))
	opts = append(opts, partitioner.WithBoundaryType(cfg.BoundaryType))

	part, err := partitioner.New(cfg.PartitionerType, opts...)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return part, nil
}
