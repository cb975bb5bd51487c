package dynamics

import "github.com/lmarchetti/reachtube/ffnet"

// Plant describes a discrete-time affine system
//
//	x_{k+1} = A*x_k + B*clip(u_k, uMin, uMax) + c
//
// at a fixed sample time. Implementations are expected to be immutable
// value-or-pointer types safe for concurrent read access, since a single
// Plant is shared by every cell and timestep of an analysis run.
type Plant interface {
	// Dims returns the state dimension n and input dimension m.
	Dims() (n, m int)

	// Matrices returns the plant's affine-update matrices and offset.
	// A is n x n, B is n x m, c has length n.
	Matrices() (A, B *ffnet.Mat, c []float64)

	// ActuatorBounds returns the elementwise control saturation limits,
	// each of length m.
	ActuatorBounds() (uMin, uMax []float64)

	// SampleTime returns the fixed discretization step, in seconds.
	SampleTime() float64
}
