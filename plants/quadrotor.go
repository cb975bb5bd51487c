package plants

import (
	"fmt"

	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/matrix"
)

// Quadrotor is a linearized planar quadrotor model with state
// [x, vx, y, vy, theta, omega] and inputs [thrust, torque], discretized
// with a forward-Euler step of size dt around hover. g is gravitational
// acceleration (m/s^2) and mass is the vehicle mass (kg), used to scale
// the thrust input's effect on vertical acceleration.
type Quadrotor struct {
	dt         float64
	mass       float64
	a, b       *ffnet.Mat
	uMin, uMax []float64
}

var _ dynamics.Plant = (*Quadrotor)(nil)

// NewQuadrotor builds a Quadrotor with sample time dt, mass, gravity g,
// and elementwise actuator bounds for [thrust, torque].
func NewQuadrotor(dt, mass, g float64, uMin, uMax []float64) (*Quadrotor, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("plants: sample time %g must be positive", dt)
	}
	if mass <= 0 {
		return nil, fmt.Errorf("plants: mass %g must be positive", mass)
	}
	if len(uMin) != 2 || len(uMax) != 2 {
		return nil, fmt.Errorf("plants: quadrotor expects 2 actuator bounds, got %d/%d", len(uMin), len(uMax))
	}
	for i := range uMin {
		if uMin[i] > uMax[i] {
			return nil, fmt.Errorf("plants: uMin[%d]=%g > uMax[%d]=%g", i, uMin[i], i, uMax[i])
		}
	}

	a, err := matrix.NewDense(6, 6)
	if err != nil {
		return nil, err
	}
	// x, vx, y, vy, theta, omega with linearized gravity tilt coupling.
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, dt)
	_ = a.Set(1, 1, 1)
	_ = a.Set(1, 4, -g*dt)
	_ = a.Set(2, 2, 1)
	_ = a.Set(2, 3, dt)
	_ = a.Set(3, 3, 1)
	_ = a.Set(4, 4, 1)
	_ = a.Set(4, 5, dt)
	_ = a.Set(5, 5, 1)

	b, err := matrix.NewDense(6, 2)
	if err != nil {
		return nil, err
	}
	_ = b.Set(3, 0, dt/mass)
	_ = b.Set(5, 1, dt)

	return &Quadrotor{
		dt: dt, mass: mass,
		a: a, b: b,
		uMin: append([]float64(nil), uMin...),
		uMax: append([]float64(nil), uMax...),
	}, nil
}

func (p *Quadrotor) Dims() (n, m int) { return 6, 2 }

func (p *Quadrotor) Matrices() (A, B *ffnet.Mat, c []float64) {
	return p.a, p.b, make([]float64, 6)
}

func (p *Quadrotor) ActuatorBounds() (uMin, uMax []float64) {
	return p.uMin, p.uMax
}

func (p *Quadrotor) SampleTime() float64 { return p.dt }
