package vecbox

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between a
	// constraint and a point, matrix, or another constraint.
	ErrDimensionMismatch = errors.New("vecbox: dimension mismatch")

	// ErrInvalidBounds indicates a Box whose Lo/Hi vectors are not
	// elementwise ordered (some Lo[i] > Hi[i]).
	ErrInvalidBounds = errors.New("vecbox: lower bound exceeds upper bound")

	// ErrEmptyConstraintSet indicates Hull was called with zero constraints.
	ErrEmptyConstraintSet = errors.New("vecbox: empty constraint set")

	// ErrMixedVariants indicates Hull was called with a mix of Box and
	// Polytope constraints; Hull requires same-variant inputs.
	ErrMixedVariants = errors.New("vecbox: mixed constraint variants")

	// ErrUnboundedPolytope indicates a Polytope with no finite bounding
	// box could be derived, so Sample cannot rejection-sample it.
	ErrUnboundedPolytope = errors.New("vecbox: polytope has no finite bounding box")

	// ErrInvalidSampleCount indicates Sample was called with n <= 0.
	ErrInvalidSampleCount = errors.New("vecbox: sample count must be > 0")
)
