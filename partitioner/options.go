package partitioner

import "math/rand"

// Option customizes a partitioner constructor before it builds the
// concrete Partitioner value, mirroring the reference builder
// package's tolerant BuilderOption application: constructors that do
// not need a given field simply ignore it.
type Option func(*config)

type config struct {
	numPartitions []int
	maxCells      int
	tolerance     float64
	sampleCount   int
	rng           *rand.Rand
	boundaryType  string
}

// DefaultConfig returns the baseline configuration: no fixed grid,
// a budget of 32 cells, a tolerance of 0.05, 64 samples per cell, a
// rand.Rand deterministically seeded with 1, and a box boundary type.
func DefaultConfig() config {
	return config{
		maxCells:     32,
		tolerance:    0.05,
		sampleCount:  64,
		rng:          rand.New(rand.NewSource(1)),
		boundaryType: "box",
	}
}

// WithNumPartitions sets the Uniform partitioner's per-dimension
// split counts. Panics if any count is not positive, matching the
// reference builder package's fail-fast option-construction policy.
func WithNumPartitions(counts []int) Option {
	for _, k := range counts {
		if k <= 0 {
			panic("partitioner: WithNumPartitions(count<=0)")
		}
	}
	cp := append([]int(nil), counts...)
	return func(c *config) {
		c.numPartitions = cp
	}
}

// WithMaxCells sets the simulation-guided variants' cell-count
// budget. Panics if not positive.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic("partitioner: WithMaxCells(n<=0)")
	}
	return func(c *config) {
		c.maxCells = n
	}
}

// WithTolerance sets the simulation-guided variants' worst-gap
// termination threshold. Panics if negative.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic("partitioner: WithTolerance(tol<0)")
	}
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithSampleCount sets how many trajectory samples the
// simulation-guided variants draw per cell. Panics if not positive.
func WithSampleCount(n int) Option {
	if n <= 0 {
		panic("partitioner: WithSampleCount(n<=0)")
	}
	return func(c *config) {
		c.sampleCount = n
	}
}

// WithRand provides an explicit RNG, exactly as the reference
// builder package's WithRand does for its stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partitioner: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG from seed, exactly as the
// reference builder package's WithSeed does.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBoundaryType selects the Uniform partitioner's output shape:
// "box" hulls each cell's propagated box into their bounding box,
// "polytope" converts them to polytopes and hulls those into one
// polytope enclosing their union (see vecbox.Hull). Variants other
// than Uniform ignore this option, matching the tolerant
// builder-option application documented above.
func WithBoundaryType(bt string) Option {
	return func(c *config) {
		c.boundaryType = bt
	}
}
