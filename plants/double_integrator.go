package plants

import (
	"fmt"

	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
)

// DoubleIntegrator is the canonical 2-state, 1-input discrete-time plant
// used in reachability benchmarks: position and velocity under a single
// acceleration input, x_{k+1} = [[1, dt],[0, 1]]*x_k + [[0],[dt]]*u_k.
type DoubleIntegrator struct {
	dt         float64
	a, b       *ffnet.Mat
	uMin, uMax []float64
}

var _ dynamics.Plant = (*DoubleIntegrator)(nil)

// NewDoubleIntegrator builds a DoubleIntegrator with sample time dt and
// actuator saturation [uMin, uMax]. Returns an error if dt <= 0 or
// uMin > uMax.
func NewDoubleIntegrator(dt, uMin, uMax float64) (*DoubleIntegrator, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("plants: sample time %g must be positive", dt)
	}
	if uMin > uMax {
		return nil, fmt.Errorf("plants: uMin %g > uMax %g", uMin, uMax)
	}

	a, err := matrix.NewDense(2, 2)
	if err != nil {
		return nil, err
	}
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, dt)
	_ = a.Set(1, 1, 1)

	b, err := matrix.NewDense(2, 1)
	if err != nil {
		return nil, err
	}
	_ = b.Set(1, 0, dt)

	return &DoubleIntegrator{
		dt: dt, a: a, b: b,
		uMin: []float64{uMin}, uMax: []float64{uMax},
	}, nil
}

func (p *DoubleIntegrator) Dims() (n, m int) { return 2, 1 }

func (p *DoubleIntegrator) Matrices() (A, B *ffnet.Mat, c []float64) {
	return p.a, p.b, []float64{0, 0}
}

func (p *DoubleIntegrator) ActuatorBounds() (uMin, uMax []float64) {
	return p.uMin, p.uMax
}

func (p *DoubleIntegrator) SampleTime() float64 { return p.dt }
