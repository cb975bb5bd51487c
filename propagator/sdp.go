package propagator

import (
	"context"
	"fmt"

	"github.com/lmarchetti/reachtube/diagnostics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
	"github.com/lmarchetti/reachtube/solver"
	"github.com/lmarchetti/reachtube/vecbox"
)

// SDP formulates a quadratic-constraint relaxation of the network
// over the input box and, for each output dimension, solves two
// programs (one minimize, one maximize) via an external solver.Solver
// collaborator, so Solve is called twice per output dimension; it
// returns the box of the per-dimension optima. A solver failure (anything
// other than solver.StatusOptimal) is fatal for the cell: callers
// must not silently widen the bound, per spec §4.4.
type SDP struct {
	solve solver.Solver
	eps   float64
	sink  diagnostics.Sink
}

var _ Propagator = SDP{}

func newSDP(opt Option) Propagator {
	cfg := DefaultConfig()
	opt(&cfg)
	if cfg.solver == nil {
		panic("propagator: SDP: " + ErrNilSolver.Error())
	}
	return SDP{solve: cfg.solver, eps: cfg.epsilon, sink: cfg.sink}
}

// Name returns "SDP".
func (SDP) Name() string { return "SDP" }

// qcsdp is the assembled relaxation data for one Bound call: a
// variable per input coordinate, per pre-activation neuron, and per
// ReLU post-activation neuron, linked by Aeq (the affine layer maps),
// Aineq (the input box plus each ReLU's McCormick envelope), and Q
// (the aggregated quadratic term y_i^2 - y_i*z_i <= 0 of every ReLU
// neuron, summed into the single quadratic constraint solver.Solver
// supports). outputVar maps each network output dimension to its
// variable index.
type qcsdp struct {
	dim       int
	Q         *ffnet.Mat
	Aeq       *ffnet.Mat
	beq       []float64
	Aineq     *ffnet.Mat
	bineq     []float64
	outputVar []int
}

// zeroSlope is the lower-relaxation slope policy handed to
// relaxNeuron for SDP's envelope; only the upper line is used (the
// y >= 0 and y >= z rows already pin the lower envelope exactly), so
// the value this returns is never read.
func zeroSlope(_, _, _ float64) float64 { return 0 }

// build assembles the QC-SDP relaxation of net over input: input-box
// rows in Aineq, one Aeq row per neuron wiring z = W*in + b, three
// Aineq rows and a Q contribution per ReLU neuron's McCormick
// envelope (y >= 0, y >= z, y <= slopeUpper*z + interceptUpper, and
// y^2 - y*z <= 0).
func (p SDP) build(input *vecbox.Box, net *ffnet.Network) (*qcsdp, error) {
	preAct, err := forwardPreActivationBounds(input, net)
	if err != nil {
		return nil, err
	}

	n := net.NumLayers()
	inDim := net.InputSize()
	zStart := make([]int, n)
	yStart := make([]int, n)
	outStart := make([]int, n)
	isReLU := make([]bool, n)

	cursor := inDim
	numEq := 0
	numIneq := 2 * inDim
	for i := 0; i < n; i++ {
		layer, err := net.Layer(i)
		if err != nil {
			return nil, err
		}
		d := layer.OutputSize()
		numEq += d
		zStart[i] = cursor
		cursor += d
		if layer.Act == ffnet.ActivationReLU {
			isReLU[i] = true
			yStart[i] = cursor
			cursor += d
			outStart[i] = yStart[i]
			numIneq += 3 * d
		} else {
			outStart[i] = zStart[i]
		}
	}
	total := cursor

	Q, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, err
	}
	Aeq, err := matrix.NewDense(numEq, total)
	if err != nil {
		return nil, err
	}
	beq := make([]float64, numEq)
	Aineq, err := matrix.NewDense(numIneq, total)
	if err != nil {
		return nil, err
	}
	bineq := make([]float64, numIneq)

	ineqRow := 0
	for j := 0; j < inDim; j++ {
		if err := Aineq.Set(ineqRow, j, 1); err != nil {
			return nil, err
		}
		bineq[ineqRow] = input.Hi[j]
		ineqRow++
		if err := Aineq.Set(ineqRow, j, -1); err != nil {
			return nil, err
		}
		bineq[ineqRow] = -input.Lo[j]
		ineqRow++
	}

	eqRow := 0
	inStart := 0
	for i := 0; i < n; i++ {
		layer, err := net.Layer(i)
		if err != nil {
			return nil, err
		}
		d := layer.OutputSize()

		for k := 0; k < d; k++ {
			if err := Aeq.Set(eqRow, zStart[i]+k, 1); err != nil {
				return nil, err
			}
			for j := 0; j < layer.InputSize(); j++ {
				w, _ := layer.W.At(k, j)
				if w == 0 {
					continue
				}
				if err := Aeq.Set(eqRow, inStart+j, -w); err != nil {
					return nil, err
				}
			}
			beq[eqRow] = layer.B[k]
			eqRow++
		}

		if isReLU[i] {
			for k := 0; k < d; k++ {
				zIdx, yIdx := zStart[i]+k, yStart[i]+k
				rx := relaxNeuron(preAct[i].L[k], preAct[i].U[k], p.eps, zeroSlope, i, k, p.sink)

				if err := Aineq.Set(ineqRow, yIdx, -1); err != nil {
					return nil, err
				}
				ineqRow++

				if err := Aineq.Set(ineqRow, zIdx, 1); err != nil {
					return nil, err
				}
				if err := Aineq.Set(ineqRow, yIdx, -1); err != nil {
					return nil, err
				}
				ineqRow++

				if err := Aineq.Set(ineqRow, yIdx, 1); err != nil {
					return nil, err
				}
				if rx.slopeUpper != 0 {
					if err := Aineq.Set(ineqRow, zIdx, -rx.slopeUpper); err != nil {
						return nil, err
					}
				}
				bineq[ineqRow] = rx.interceptUpper
				ineqRow++

				qyy, _ := Q.At(yIdx, yIdx)
				if err := Q.Set(yIdx, yIdx, qyy+1); err != nil {
					return nil, err
				}
				qyz, _ := Q.At(yIdx, zIdx)
				if err := Q.Set(yIdx, zIdx, qyz-0.5); err != nil {
					return nil, err
				}
				qzy, _ := Q.At(zIdx, yIdx)
				if err := Q.Set(zIdx, yIdx, qzy-0.5); err != nil {
					return nil, err
				}
			}
		}

		inStart = outStart[i]
	}

	outDim := net.OutputSize()
	outputVar := make([]int, outDim)
	lastOut := outStart[n-1]
	for d := 0; d < outDim; d++ {
		outputVar[d] = lastOut + d
	}

	return &qcsdp{dim: total, Q: Q, Aeq: Aeq, beq: beq, Aineq: Aineq, bineq: bineq, outputVar: outputVar}, nil
}

// Bound builds the QC-SDP relaxation of net over input, then solves
// one minimize+maximize pair per output dimension, each objective
// vector selecting that dimension's output variable.
func (p SDP) Bound(ctx context.Context, input *vecbox.Box, net *ffnet.Network) (*vecbox.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("SDP: %w", err)
	}
	if input.Dim() != net.InputSize() {
		return nil, fmt.Errorf("SDP: %w", ErrInputDimMismatch)
	}

	sys, err := p.build(input, net)
	if err != nil {
		return nil, fmt.Errorf("SDP: %w", err)
	}

	outDim := net.OutputSize()
	lo := make([]float64, outDim)
	hi := make([]float64, outDim)

	for d := 0; d < outDim; d++ {
		c := make([]float64, sys.dim)
		c[sys.outputVar[d]] = 1

		status, _, minVal, err := p.solve.Solve(sys.Q, sys.Aeq, sys.beq, sys.Aineq, sys.bineq, c, solver.Minimize)
		if err != nil {
			return nil, fmt.Errorf("SDP: dimension %d: %w", d, err)
		}
		if status != solver.StatusOptimal {
			return nil, fmt.Errorf("SDP: dimension %d: minimize returned status %s: %w", d, status, solver.ErrSolverFailed)
		}

		status, _, maxVal, err := p.solve.Solve(sys.Q, sys.Aeq, sys.beq, sys.Aineq, sys.bineq, c, solver.Maximize)
		if err != nil {
			return nil, fmt.Errorf("SDP: dimension %d: %w", d, err)
		}
		if status != solver.StatusOptimal {
			return nil, fmt.Errorf("SDP: dimension %d: maximize returned status %s: %w", d, status, solver.ErrSolverFailed)
		}

		lo[d], hi[d] = minVal, maxVal
	}

	return vecbox.NewBox(lo, hi)
}
