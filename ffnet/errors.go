package ffnet

import "errors"

var (
	// ErrEmptyNetwork indicates that a Network was constructed with no layers.
	ErrEmptyNetwork = errors.New("ffnet: network has no layers")

	// ErrLayerShapeMismatch indicates that a layer's weight rows/cols are
	// inconsistent with its bias length, or that adjacent layers disagree
	// on dimension (out(i) != in(i+1)).
	ErrLayerShapeMismatch = errors.New("ffnet: layer shape mismatch")

	// ErrInputShapeMismatch indicates that an input vector passed to Eval
	// does not match the network's input dimension.
	ErrInputShapeMismatch = errors.New("ffnet: input shape mismatch")

	// ErrLayerIndexOutOfRange indicates that Layer(i) was called with i
	// outside [0, NumLayers()).
	ErrLayerIndexOutOfRange = errors.New("ffnet: layer index out of range")

	// ErrUnknownActivation indicates an Activation value outside the
	// supported set (ActivationReLU, ActivationLinear).
	ErrUnknownActivation = errors.New("ffnet: unknown activation")
)
