package dynamics

import (
	"fmt"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/vecbox"
)

// Step implements S' = A*S (+) B*clip(U) (+) {c} for a single timestep.
// s and u must both be *vecbox.Box (the pipeline's pre/post state and
// propagated-control representation); ErrUnsupportedConstraintType is
// returned otherwise. Step is monotone under set inclusion: widening
// either input only widens the result, since affine image and Minkowski
// sum of boxes are both monotone under ⊆.
func Step(p Plant, s vecbox.Constraint, u vecbox.Constraint) (vecbox.Constraint, error) {
	n, m := p.Dims()
	if err := vecbox.ValidateSameDim(s.Dim(), n); err != nil {
		return nil, fmt.Errorf("dynamics: state dim: %w", err)
	}
	if err := vecbox.ValidateSameDim(u.Dim(), m); err != nil {
		return nil, fmt.Errorf("dynamics: control dim: %w", err)
	}

	sBox, ok := s.(*vecbox.Box)
	if !ok {
		return nil, fmt.Errorf("state set has type %T: %w", s, ErrUnsupportedConstraintType)
	}
	uBox, ok := u.(*vecbox.Box)
	if !ok {
		return nil, fmt.Errorf("control set has type %T: %w", u, ErrUnsupportedConstraintType)
	}

	A, B, c := p.Matrices()

	zeroN := make([]float64, n)
	stateImg, err := sBox.AffineImage(A, zeroN)
	if err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}
	ctrlImg, err := uBox.AffineImage(B, zeroN)
	if err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}

	sum, err := stateImg.(*vecbox.Box).MinkowskiAddBox(ctrlImg.(*vecbox.Box))
	if err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}

	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := 0; i < n; i++ {
		lo[i] = sum.Lo[i] + c[i]
		hi[i] = sum.Hi[i] + c[i]
	}

	return &vecbox.Box{Lo: lo, Hi: hi}, nil
}

// Clip clamps each element of u to [lo[i], hi[i]]. Clip is idempotent:
// Clip(Clip(u, lo, hi), lo, hi) == Clip(u, lo, hi).
func Clip(u []float64, lo, hi []float64) []float64 {
	out := make([]float64, len(u))
	for i, v := range u {
		switch {
		case v < lo[i]:
			out[i] = lo[i]
		case v > hi[i]:
			out[i] = hi[i]
		default:
			out[i] = v
		}
	}
	return out
}

// Simulate drives a single trajectory from x0 for T steps under the
// given controller network, applying actuator clipping at every step.
// The returned slice has length T+1, with trajectory[0] == x0.
func Simulate(p Plant, x0 []float64, ctrl *ffnet.Network, T int) ([][]float64, error) {
	if T < 0 {
		return nil, ErrNegativeHorizon
	}
	n, _ := p.Dims()
	if err := vecbox.ValidateSameDim(len(x0), n); err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}
	if p.SampleTime() <= 0 {
		return nil, ErrInvalidSampleTime
	}

	A, B, c := p.Matrices()
	uMin, uMax := p.ActuatorBounds()

	traj := make([][]float64, T+1)
	x := make([]float64, n)
	copy(x, x0)
	traj[0] = x

	for k := 0; k < T; k++ {
		uRaw, err := ctrl.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("dynamics: controller eval at step %d: %w", k, err)
		}
		u := Clip(uRaw, uMin, uMax)

		ax, err := matVec(A, x)
		if err != nil {
			return nil, fmt.Errorf("dynamics: %w", err)
		}
		bu, err := matVec(B, u)
		if err != nil {
			return nil, fmt.Errorf("dynamics: %w", err)
		}

		next := make([]float64, n)
		for i := 0; i < n; i++ {
			next[i] = ax[i] + bu[i] + c[i]
		}

		x = next
		traj[k+1] = x
	}

	return traj, nil
}
