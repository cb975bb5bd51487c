// Package ffnet represents immutable feed-forward neural networks with
// piecewise-linear activations and evaluates them on concrete inputs.
//
// What & Why:
//
//	A Network is an ordered stack of Layer values, each a weight matrix,
//	a bias vector, and an Activation. NewNetwork validates that adjacent
//	layers agree on dimension (out(i) == in(i+1)) once, at construction,
//	so every later Eval call can skip re-validating internal shapes and
//	only check the input vector against the first layer.
//
// Complexity:
//
//	NewNetwork is O(L) in the number of layers. Eval is
//	O(sum_i rows_i * cols_i), dominated by the matrix-vector products.
package ffnet

import "github.com/lmarchetti/reachtube/matrix"

// Mat is the dense float64 matrix type used for layer weights, grounded
// directly on matrix.Dense: row-major storage, bounds-checked At/Set,
// Clone.
type Mat = matrix.Dense
