package propagator

import (
	"context"
	"fmt"

	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
	"github.com/lmarchetti/reachtube/vecbox"
)

// slopeFn picks the ReLU lower-bound relaxation slope lambda in
// [0,1] for an unstable neuron (l < 0 < u), given its pre-activation
// bounds and the already-computed upper slope. crownSlope (crown.go)
// and fastLinSlope (fastlin.go) are the two policies in use.
type slopeFn func(l, u, upperSlope float64) float64

// reluRelax holds the four linear-relaxation parameters for one
// ReLU neuron: lowerSlope*x + lowerIntercept <= relu(x) <=
// upperSlope*x + upperIntercept over x in [l, u].
type reluRelax struct {
	slopeLower, slopeUpper         float64
	interceptLower, interceptUpper float64
}

// relaxNeuron computes the linear relaxation for one neuron's
// pre-activation bounds (l, u), reporting a NumericalWarning via sink
// and falling back to the exact IBP bound when u - l <= epsilon.
func relaxNeuron(l, u, epsilon float64, pick slopeFn, layer, neuron int, sink diagnostics.Sink) reluRelax {
	if u-l <= epsilon {
		sink.Emit(diagnostics.Event{
			Kind:    diagnostics.EventNumericalWarning,
			Layer:   layer,
			Neuron:  neuron,
			Step:    -1,
			Message: "degenerate ReLU bound gap, falling back to interval bound",
		})
		lo, hi := max(l, 0), max(u, 0)
		return reluRelax{interceptLower: lo, interceptUpper: hi}
	}
	if l >= 0 {
		return reluRelax{slopeLower: 1, slopeUpper: 1}
	}
	if u <= 0 {
		return reluRelax{}
	}
	upperSlope := u / (u - l)
	upperIntercept := -l * u / (u - l)
	lowerSlope := pick(l, u, upperSlope)
	return reluRelax{
		slopeLower:     lowerSlope,
		slopeUpper:     upperSlope,
		interceptLower: 0,
		interceptUpper: upperIntercept,
	}
}

// linearBound is an affine bound Lambda*x + Mu over the network's
// input, one row per output dimension.
type linearBound struct {
	Lambda *matrix.Dense
	Mu     []float64
}

// linearRelax implements CROWN and Fast-Lin: both share this
// backward-substitution core and differ only in their slopeFn.
type linearRelax struct {
	name  string
	slope slopeFn
	eps   float64
	sink  diagnostics.Sink
}

var _ Propagator = linearRelax{}

func newLinearRelax(name string, slope slopeFn, opt Option) Propagator {
	cfg := DefaultConfig()
	opt(&cfg)
	return linearRelax{name: name, slope: slope, eps: cfg.epsilon, sink: cfg.sink}
}

// Name returns "CROWN" or "FastLin".
func (p linearRelax) Name() string { return p.name }

// Bound runs a forward IBP pass to collect per-layer pre-activation
// bounds, then backward-substitutes linear relaxations from the
// output layer to the input, finally evaluating the resulting
// Lambda*x + Mu bounds over the input box by sign-split, exactly as
// IBP evaluates a box affine image. The result is intersected with the
// output interval of that forward IBP pass, so it is never looser than
// IBP.
func (p linearRelax) Bound(ctx context.Context, input *vecbox.Box, net *ffnet.Network) (*vecbox.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	if input.Dim() != net.InputSize() {
		return nil, fmt.Errorf("%s: %w", p.name, ErrInputDimMismatch)
	}

	preActBounds, err := forwardPreActivationBounds(input, net)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}

	upper, lower, err := p.backwardSubstitute(net, preActBounds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}

	lo, hi, err := evaluateLinearBounds(upper, lower, input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	out := preActBounds[len(preActBounds)-1]
	for i := range lo {
		lo[i] = max(lo[i], out.L[i])
		hi[i] = min(hi[i], out.U[i])
	}
	return vecbox.NewBox(lo, hi)
}

// layerBounds carries one hidden layer's pre-activation interval.
type layerBounds struct {
	L, U []float64
}

// forwardPreActivationBounds runs an IBP-style forward pass, one
// entry per layer, recording pre-activation bounds before any ReLU
// clamp is applied.
func forwardPreActivationBounds(input *vecbox.Box, net *ffnet.Network) ([]layerBounds, error) {
	bounds := make([]layerBounds, net.NumLayers())
	cur := input
	for i := 0; i < net.NumLayers(); i++ {
		layer, err := net.Layer(i)
		if err != nil {
			return nil, err
		}
		constraint, err := cur.AffineImage(layer.W, layer.B)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		preAct, ok := constraint.(*vecbox.Box)
		if !ok {
			return nil, fmt.Errorf("layer %d: affine image did not produce a box", i)
		}
		bounds[i] = layerBounds{L: append([]float64(nil), preAct.Lo...), U: append([]float64(nil), preAct.Hi...)}
		if layer.Act == ffnet.ActivationReLU {
			cur = reluBox(preAct)
		} else {
			cur = preAct
		}
	}
	return bounds, nil
}

// backwardSubstitute composes per-layer linear relaxations, starting
// from the last (linear) layer and substituting through each earlier
// ReLU layer, returning the final upper and lower linearBounds over
// the network's input.
func (p linearRelax) backwardSubstitute(net *ffnet.Network, bounds []layerBounds) (upper, lower linearBound, err error) {
	lastIdx := net.NumLayers() - 1
	last, err := net.Layer(lastIdx)
	if err != nil {
		return linearBound{}, linearBound{}, err
	}
	upper = linearBound{Lambda: last.W, Mu: append([]float64(nil), last.B...)}
	lower = linearBound{Lambda: last.W, Mu: append([]float64(nil), last.B...)}

	for i := lastIdx - 1; i >= 0; i-- {
		layer, err := net.Layer(i)
		if err != nil {
			return linearBound{}, linearBound{}, err
		}
		if layer.Act != ffnet.ActivationReLU {
			upper, err = projectThroughLinear(upper, layer)
			if err != nil {
				return linearBound{}, linearBound{}, err
			}
			lower, err = projectThroughLinear(lower, layer)
			if err != nil {
				return linearBound{}, linearBound{}, err
			}
			continue
		}

		relax := make([]reluRelax, len(bounds[i].L))
		for j := range relax {
			relax[j] = relaxNeuron(bounds[i].L[j], bounds[i].U[j], p.eps, p.slope, i, j, p.sink)
		}

		upper, err = p.substituteReLU(upper, relax, true)
		if err != nil {
			return linearBound{}, linearBound{}, err
		}
		lower, err = p.substituteReLU(lower, relax, false)
		if err != nil {
			return linearBound{}, linearBound{}, err
		}

		upper, err = projectThroughLinear(upper, layer)
		if err != nil {
			return linearBound{}, linearBound{}, err
		}
		lower, err = projectThroughLinear(lower, layer)
		if err != nil {
			return linearBound{}, linearBound{}, err
		}
	}
	return upper, lower, nil
}

// substituteReLU rewrites bound's Lambda row entries through the
// per-neuron relaxation lines, picking the upper or lower relax line
// per entry's sign: for the upper-bound pass, a non-negative
// coefficient picks the upper relax line (it scales a quantity the
// output increases with); a negative coefficient picks the lower
// line (flipping the inequality direction). The lower-bound pass
// mirrors this.
func (p linearRelax) substituteReLU(bound linearBound, relax []reluRelax, upperPass bool) (linearBound, error) {
	rows, cols := bound.Lambda.Rows(), bound.Lambda.Cols()
	next, err := matrix.NewDense(rows, cols)
	if err != nil {
		return linearBound{}, err
	}
	mu := append([]float64(nil), bound.Mu...)

	for r := 0; r < rows; r++ {
		for j := 0; j < cols; j++ {
			coeff, err := bound.Lambda.At(r, j)
			if err != nil {
				return linearBound{}, err
			}
			rx := relax[j]
			var slope, intercept float64
			useUpper := (coeff >= 0) == upperPass
			if useUpper {
				slope, intercept = rx.slopeUpper, rx.interceptUpper
			} else {
				slope, intercept = rx.slopeLower, rx.interceptLower
			}
			if err := next.Set(r, j, coeff*slope); err != nil {
				return linearBound{}, err
			}
			mu[r] += coeff * intercept
		}
	}
	return linearBound{Lambda: next, Mu: mu}, nil
}

// projectThroughLinear composes bound's Lambda*z + Mu (z being layer
// i's post-activation output) with layer i's affine map z = W*x + b,
// producing Lambda*W*x + (Mu + Lambda*b).
func projectThroughLinear(bound linearBound, layer ffnet.Layer) (linearBound, error) {
	nextLambdaM, err := matrix.Mul(bound.Lambda, layer.W)
	if err != nil {
		return linearBound{}, err
	}
	nextLambda, ok := nextLambdaM.(*matrix.Dense)
	if !ok {
		return linearBound{}, fmt.Errorf("propagator: Mul did not return *Dense")
	}
	delta, err := matrix.MatVec(bound.Lambda, layer.B)
	if err != nil {
		return linearBound{}, err
	}
	mu := append([]float64(nil), bound.Mu...)
	for i := range mu {
		mu[i] += delta[i]
	}
	return linearBound{Lambda: nextLambda, Mu: mu}, nil
}

// evaluateLinearBounds maximizes/minimizes Lambda*x + Mu over the
// input box by sign-split, the same analytic reduction IBP performs
// on a signed affine map.
func evaluateLinearBounds(upper, lower linearBound, input *vecbox.Box) (lo, hi []float64, err error) {
	rows := upper.Lambda.Rows()
	lo = make([]float64, rows)
	hi = make([]float64, rows)
	for r := 0; r < rows; r++ {
		var upSum, loSum float64
		for j := 0; j < upper.Lambda.Cols(); j++ {
			cu, err := upper.Lambda.At(r, j)
			if err != nil {
				return nil, nil, err
			}
			cl, err := lower.Lambda.At(r, j)
			if err != nil {
				return nil, nil, err
			}
			if cu >= 0 {
				upSum += cu * input.Hi[j]
			} else {
				upSum += cu * input.Lo[j]
			}
			if cl >= 0 {
				loSum += cl * input.Lo[j]
			} else {
				loSum += cl * input.Hi[j]
			}
		}
		hi[r] = upSum + upper.Mu[r]
		lo[r] = loSum + lower.Mu[r]
	}
	return lo, hi, nil
}
