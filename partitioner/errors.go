package partitioner

import "errors"

// ErrUnknownPartitioner is returned by New when no constructor was
// registered under the requested name.
var ErrUnknownPartitioner = errors.New("partitioner: unknown partitioner name")

// ErrAlreadyRegistered is returned by Register when the given name
// already has a constructor.
var ErrAlreadyRegistered = errors.New("partitioner: name already registered")

// ErrUnsupportedConstraintType is returned when a partitioner that
// operates on boxes receives a non-box input constraint.
var ErrUnsupportedConstraintType = errors.New("partitioner: input constraint must be a box")

// ErrPartitionCountMismatch is returned by Uniform when the number
// of per-dimension partition counts does not match the input's
// dimension.
var ErrPartitionCountMismatch = errors.New("partitioner: partition count length does not match input dimension")

// ErrInvalidPartitionCount is returned by WithNumPartitions when a
// per-dimension count is not positive.
var ErrInvalidPartitionCount = errors.New("partitioner: partition count must be positive")
