// Package matrix provides the dense float64 linear algebra kernels shared by
// ffnet (layer weights and forward evaluation), dynamics (affine plant maps),
// and propagator (backward-substitution bound composition).
//
// What & Why:
//
//	Every numerical surface in reachtube works over the same shape: a
//	row-major matrix of float64 with bounds-checked access and deep-clone
//	semantics. Keeping one Matrix interface and one Dense implementation
//	here — instead of scattering float64 slices through every package —
//	lets ffnet, dynamics, and propagator share validation, error wrapping,
//	and the Add/Sub/Mul/Transpose/Scale/Hadamard/MatVec kernels without
//	duplicating bounds-checking logic.
//
// Complexity:
//
//	Rows() and Cols() run in O(1). At()/Set() are O(1) with bounds checks.
//	Clone() is O(rows*cols). Kernel functions are documented individually.
package matrix
