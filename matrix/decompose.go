// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"fmt"
)

// ErrSingular is returned when a zero pivot is encountered during LU
// decomposition or inversion.
var ErrSingular = errors.New("matrix: matrix is singular")

// lu performs Doolittle LU decomposition on a square Dense matrix m,
// returning unit lower-triangular L and upper-triangular U such that
// L*U == m.
//
// Complexity: O(n^3) time, O(n^2) space.
func lu(m *Dense) (*Dense, *Dense, error) {
	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("lu: %w", err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("lu: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				lVal, _ := L.At(i, k)
				uVal, _ := U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ := m.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				lVal, _ := L.At(j, k)
				uVal, _ := U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ := m.At(j, i)
			uDiag, _ := U.At(i, i)
			if uDiag == 0 {
				return nil, nil, fmt.Errorf("lu: zero pivot at %d: %w", i, ErrSingular)
			}
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	return L, U, nil
}

// Inverse returns the inverse of the square Dense matrix m via LU
// decomposition plus forward/backward substitution against each column
// of the identity.
//
// Stage 1 (Validate): m must be square.
// Stage 2 (Decompose): m = L*U via Doolittle.
// Stage 3 (Execute): for each identity column e_col, solve L*y = e_col
// then U*x = y.
// Stage 4 (Finalize): assemble the solved columns into the result.
//
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	n := m.Rows()

	L, U, err := lu(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, n)
	x := make([]float64, n)

	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				lVal, _ := L.At(i, k)
				sum += lVal * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}

		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				uVal, _ := U.At(i, k)
				sum += uVal * x[k]
			}
			pivot, _ := U.At(i, i)
			if pivot == 0 {
				return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", i, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		for i := 0; i < n; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}

	return inv, nil
}
