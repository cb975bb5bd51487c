package closedloop

import (
	"context"
	"fmt"

	"github.com/lmarchetti/reachtube/dynamics"
	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/propagator"
	"github.com/lmarchetti/reachtube/vecbox"
)

// Step implements spec §4.5's one-step composition:
//
//  1. U = clip(prop.Bound(input, net), uMin, uMax)
//  2. S' = A*input (+) B*U (+) {c}
//
// Step is monotone under set inclusion: since propagator.Bound,
// dynamics.Clip, and dynamics.Step are each monotone, a wider input
// can only produce a wider or equal result. ctx is checked
// immediately before the propagator call, the one place in this
// module a propagator is ever invoked.
func Step(ctx context.Context, input vecbox.Constraint, prop propagator.Propagator, net *ffnet.Network, p dynamics.Plant) (vecbox.Constraint, error) {
	inputBox, ok := input.(*vecbox.Box)
	if !ok {
		return nil, fmt.Errorf("closedloop: %w", ErrUnsupportedConstraintType)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("closedloop: %w", err)
	}
	outBox, err := prop.Bound(ctx, inputBox, net)
	if err != nil {
		return nil, fmt.Errorf("closedloop: %w", err)
	}

	uMin, uMax := p.ActuatorBounds()
	clipped := &vecbox.Box{
		Lo: dynamics.Clip(outBox.Lo, uMin, uMax),
		Hi: dynamics.Clip(outBox.Hi, uMin, uMax),
	}

	next, err := dynamics.Step(p, inputBox, clipped)
	if err != nil {
		return nil, fmt.Errorf("closedloop: %w", err)
	}
	return next, nil
}
