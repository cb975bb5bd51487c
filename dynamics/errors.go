package dynamics

import "errors"

var (
	// ErrDimensionMismatch indicates a plant's matrices, actuator bounds,
	// or an input state/control vector disagree in dimension.
	ErrDimensionMismatch = errors.New("dynamics: dimension mismatch")

	// ErrInvalidSampleTime indicates a Plant reported SampleTime() <= 0.
	ErrInvalidSampleTime = errors.New("dynamics: sample time must be positive")

	// ErrNegativeHorizon indicates Simulate was called with T < 0.
	ErrNegativeHorizon = errors.New("dynamics: horizon must be >= 0")

	// ErrUnsupportedConstraintType indicates Step was called with a
	// vecbox.Constraint that is not a *vecbox.Box; Step only composes
	// boxes, matching the pipeline's use of boxes as the pre/post state
	// representation (polytopes appear only at network-output interfaces).
	ErrUnsupportedConstraintType = errors.New("dynamics: step requires box-valued constraints")
)
