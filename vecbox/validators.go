package vecbox

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameDim checks that two dimension counts are equal.
// Stage 1 (Validate): reject non-positive dimensions.
// Stage 2 (Prepare): nothing to prepare, both values are already in hand.
// Stage 3 (Execute): compare a and b.
// Stage 4 (Finalize): return nil or a wrapped ErrDimensionMismatch.
//
// Complexity: O(1).
func ValidateSameDim(a, b int) error {
	// Stage 1: reject non-positive dimensions up front.
	if a <= 0 || b <= 0 {
		return validatorErrorf("ValidateSameDim", fmt.Errorf("non-positive dimension %d,%d: %w", a, b, ErrDimensionMismatch))
	}

	// Stage 3: compare.
	if a != b {
		return validatorErrorf("ValidateSameDim", fmt.Errorf("%d != %d: %w", a, b, ErrDimensionMismatch))
	}

	// Stage 4: OK.
	return nil
}

// validateVec checks that v is non-nil and has exactly n elements.
// Complexity: O(1).
func validateVec(tag string, v []float64, n int) error {
	if v == nil {
		return validatorErrorf(tag, fmt.Errorf("nil vector: %w", ErrDimensionMismatch))
	}
	if len(v) != n {
		return validatorErrorf(tag, fmt.Errorf("length %d != %d: %w", len(v), n, ErrDimensionMismatch))
	}
	return nil
}
