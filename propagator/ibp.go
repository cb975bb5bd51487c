package propagator

import (
	"context"
	"fmt"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/vecbox"
)

// IBP is interval bound propagation: the cheapest, loosest
// propagator. Each layer's pre-activation bounds are computed via
// the signed W+/W- split already implemented by vecbox.Box.AffineImage;
// ReLU layers clamp the resulting box at zero, exactly as spec §4.4
// describes (max(L,0), max(U,0)).
type IBP struct{}

var _ Propagator = IBP{}

func newIBP(opt Option) Propagator {
	_ = opt // IBP takes no configuration
	return IBP{}
}

// Name returns "IBP".
func (IBP) Name() string { return "IBP" }

// Bound chains AffineImage and ReLU clamping through every layer of
// net, starting from input.
func (IBP) Bound(ctx context.Context, input *vecbox.Box, net *ffnet.Network) (*vecbox.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("IBP: %w", err)
	}
	if input.Dim() != net.InputSize() {
		return nil, fmt.Errorf("IBP: %w", ErrInputDimMismatch)
	}

	cur := input
	for i := 0; i < net.NumLayers(); i++ {
		layer, err := net.Layer(i)
		if err != nil {
			return nil, fmt.Errorf("IBP: %w", err)
		}
		constraint, err := cur.AffineImage(layer.W, layer.B)
		if err != nil {
			return nil, fmt.Errorf("IBP: layer %d: %w", i, err)
		}
		next, ok := constraint.(*vecbox.Box)
		if !ok {
			return nil, fmt.Errorf("IBP: layer %d: affine image did not produce a box", i)
		}
		if layer.Act == ffnet.ActivationReLU {
			next = reluBox(next)
		}
		cur = next
	}
	return cur, nil
}

// reluBox clamps a box's bounds to be non-negative, matching the IBP
// ReLU post-activation formula (max(L,0), max(U,0)).
func reluBox(b *vecbox.Box) *vecbox.Box {
	lo := make([]float64, len(b.Lo))
	hi := make([]float64, len(b.Hi))
	for i := range b.Lo {
		lo[i] = max(b.Lo[i], 0)
		hi[i] = max(b.Hi[i], 0)
	}
	return &vecbox.Box{Lo: lo, Hi: hi}
}
