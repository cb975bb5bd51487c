package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
	"github.com/lmarchetti/reachtube/reachconfig"
	"github.com/lmarchetti/reachtube/vecbox"
)

// Backward computes the T-step back-projected tube [S_{T} ... S_0]
// from a target set, returned in forward time order (Tube[0] is the
// furthest-back pre-image, Tube[len(Tube)-1] is the target itself).
//
// Each step relaxes the controller's input-output relation to the
// full actuator range, rather than the value the network would
// actually produce at each back-projected point: {x : exists u in
// [uMin, uMax], A*x + B*u + c in target} is a superset of the tighter
// set a network-restricted pre-image would produce, so the tube this
// returns remains a sound over-approximation, just looser. The net
// parameter is accepted for interface symmetry with Forward, but the
// pre-image computation does not evaluate it. Configuration fields
// such as PropagatorType, BoundaryType and PartitionerType are only
// validated; Backward builds no propagator or partitioner.
func Backward(ctx context.Context, cfg reachconfig.Configuration, p dynamics.Plant, net *ffnet.Network, target vecbox.Constraint, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.Direction != reachconfig.DirectionBackward {
		return Result{}, fmt.Errorf("analyzer: %w", ErrUnsupportedDirection)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	targetBox, ok := target.(*vecbox.Box)
	if !ok {
		return Result{}, fmt.Errorf("analyzer: %w", dynamics.ErrUnsupportedConstraintType)
	}

	reversed := []vecbox.Constraint{targetBox}
	truncated := false

	current := targetBox
	for t := 0; t < cfg.TMax; t++ {
		if err := ctx.Err(); err != nil {
			truncated = true
			o.sink.Emit(diagnostics.Event{Kind: diagnostics.EventTruncated, Layer: -1, Neuron: -1, Step: t, Message: "deadline exceeded between timesteps"})
			break
		}

		prev, err := backwardStep(current, p)
		if err != nil {
			tube := reverseConstraints(reversed)
			return Result{Tube: tube, RuntimeMS: time.Since(start).Milliseconds(), Truncated: truncated}, fmt.Errorf("analyzer: step %d: %w", t, err)
		}

		reversed = append(reversed, prev)
		current = prev
	}

	tube := reverseConstraints(reversed)
	cellsPerStep := make([]int, len(tube)-1)
	for i := range cellsPerStep {
		cellsPerStep[i] = 1
	}

	return Result{
		Tube:         tube,
		CellsPerStep: cellsPerStep,
		RuntimeMS:    time.Since(start).Milliseconds(),
		Truncated:    truncated,
	}, nil
}

func reverseConstraints(cs []vecbox.Constraint) []vecbox.Constraint {
	out := make([]vecbox.Constraint, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

// backwardStep computes a box containing {x : exists u in
// [uMin, uMax], A*x + B*u + c in target}, given x_{k+1} = A*x_k +
// B*u_k + c. Substituting y = A*x + B*u + c for y in target and u in
// [uMin, uMax] gives x = Ainv*y - (Ainv*B)*u - Ainv*c, an affine map
// of the independent box product (target x [uMin,uMax]); Box's own
// interval-arithmetic AffineImage is exact for that product, so the
// pre-image is computed by building that one combined matrix and
// reusing it.
func backwardStep(target *vecbox.Box, p dynamics.Plant) (*vecbox.Box, error) {
	n, m := p.Dims()
	A, B, c := p.Matrices()
	uMin, uMax := p.ActuatorBounds()

	Ainv, err := matrix.Inverse(A)
	if err != nil {
		return nil, fmt.Errorf("analyzer: plant matrix A is not invertible: %w", err)
	}

	AinvBRaw, err := matrix.Mul(Ainv, B)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	AinvB, err := matrix.Scale(AinvBRaw, -1)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	combined, err := matrix.NewDense(n, n+m)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := Ainv.At(i, j)
			if err := combined.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("analyzer: %w", err)
			}
		}
		for k := 0; k < m; k++ {
			v, _ := AinvB.At(i, k)
			if err := combined.Set(i, n+k, v); err != nil {
				return nil, fmt.Errorf("analyzer: %w", err)
			}
		}
	}

	AinvC, err := matrix.MatVec(Ainv, c)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	offset := make([]float64, n)
	for i := range offset {
		offset[i] = -AinvC[i]
	}

	lo := append(append([]float64(nil), target.Lo...), uMin...)
	hi := append(append([]float64(nil), target.Hi...), uMax...)
	combinedBox, err := vecbox.NewBox(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	preimage, err := combinedBox.AffineImage(combined, offset)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return preimage.(*vecbox.Box), nil
}
