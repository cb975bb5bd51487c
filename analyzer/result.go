package analyzer

import "github.com/lmarchetti/reachtube/vecbox"

// Result is the outcome of a Forward or Backward run.
type Result struct {
	// Tube holds the computed sequence of sets. For Forward, Tube[0]
	// is the initial set and Tube[t] is the t-step reachable set.
	// For Backward, Tube[len(Tube)-1] is the target and Tube[0] is
	// the furthest-back pre-image.
	Tube []vecbox.Constraint

	// PerStepError holds one value per step after the first
	// (len(PerStepError) == len(Tube)-1), populated only when
	// Configuration.EstimateError is set. Each entry is the volume of
	// the corresponding tube entry divided by the volume of the box
	// spanned by the sampled trajectories at that step (the tube
	// volume itself when the sampled box has zero volume).
	PerStepError []float64

	// RuntimeMS is the wall-clock duration of the call, in
	// milliseconds.
	RuntimeMS int64

	// CellsPerStep holds the number of partitioner leaf cells used
	// to produce each step, one entry per transition.
	CellsPerStep []int

	// Truncated is true when the deadline elapsed before reaching
	// Configuration.TMax; Tube then holds only the steps completed.
	Truncated bool
}

// avgError returns the mean of PerStepError, or 0 if empty.
func (r Result) avgError() float64 {
	if len(r.PerStepError) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range r.PerStepError {
		sum += e
	}
	return sum / float64(len(r.PerStepError))
}

// AvgError is the mean over timesteps of the per-step box-area ratio
// between the sampled trajectory range and the computed tube entry,
// exposed for callers that report a single summary number alongside
// the tube (spec's avg_error).
func (r Result) AvgError() float64 { return r.avgError() }
