package ffnet

import "fmt"

// Activation selects the nonlinearity applied after a layer's affine map.
type Activation int

const (
	// ActivationReLU applies max(0, x) element-wise.
	ActivationReLU Activation = iota
	// ActivationLinear applies the identity, used for output layers.
	ActivationLinear
)

func (a Activation) String() string {
	switch a {
	case ActivationReLU:
		return "relu"
	case ActivationLinear:
		return "linear"
	default:
		return fmt.Sprintf("activation(%d)", int(a))
	}
}

func (a Activation) apply(x []float64) {
	switch a {
	case ActivationReLU:
		for i, v := range x {
			if v < 0 {
				x[i] = 0
			}
		}
	case ActivationLinear:
		// identity, nothing to do
	}
}

// Layer is one affine-plus-activation stage of a Network: y = Act(W*x + B).
type Layer struct {
	W   *Mat
	B   []float64
	Act Activation
}

// InputSize returns the number of columns of W, the expected input length.
func (l Layer) InputSize() int { return l.W.Cols() }

// OutputSize returns the number of rows of W, the produced output length.
func (l Layer) OutputSize() int { return l.W.Rows() }

func (l Layer) validate() error {
	if l.W == nil {
		return fmt.Errorf("layer has nil weight matrix: %w", ErrLayerShapeMismatch)
	}
	if l.W.Rows() != len(l.B) {
		return fmt.Errorf("weight rows %d != bias length %d: %w", l.W.Rows(), len(l.B), ErrLayerShapeMismatch)
	}
	if l.Act != ActivationReLU && l.Act != ActivationLinear {
		return fmt.Errorf("%w: %v", ErrUnknownActivation, l.Act)
	}
	return nil
}

// Network is an immutable ordered stack of Layer values. Once constructed
// with NewNetwork, a Network's shape never changes; Eval is safe for
// concurrent use by multiple goroutines since it never mutates the
// network's own state.
type Network struct {
	layers []Layer
	inDim  int
	outDim int
}

// NewNetwork validates the given layers and returns an immutable Network.
//
// Stage 1 (Validate): at least one layer, and each layer's own weight/bias
// shapes are internally consistent.
// Stage 2 (Execute): adjacent layers must agree, out(i) == in(i+1).
// Stage 3 (Finalize): record input/output dimension and clone the layer
// slice so later external mutation of the caller's slice cannot affect
// this Network.
//
// Complexity: O(L) where L = len(layers).
func NewNetwork(layers []Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyNetwork
	}

	for i, l := range layers {
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if i > 0 && layers[i-1].OutputSize() != l.InputSize() {
			return nil, fmt.Errorf("layer %d: in=%d does not match layer %d out=%d: %w",
				i, l.InputSize(), i-1, layers[i-1].OutputSize(), ErrLayerShapeMismatch)
		}
	}

	cp := make([]Layer, len(layers))
	copy(cp, layers)

	return &Network{
		layers: cp,
		inDim:  layers[0].InputSize(),
		outDim: layers[len(layers)-1].OutputSize(),
	}, nil
}

// NumLayers returns the number of layers in the network.
func (n *Network) NumLayers() int { return len(n.layers) }

// InputSize returns the dimension of vectors accepted by Eval.
func (n *Network) InputSize() int { return n.inDim }

// OutputSize returns the dimension of vectors produced by Eval.
func (n *Network) OutputSize() int { return n.outDim }

// Layer returns a copy of the i-th layer descriptor.
// Returns ErrLayerIndexOutOfRange if i is outside [0, NumLayers()).
func (n *Network) Layer(i int) (Layer, error) {
	if i < 0 || i >= len(n.layers) {
		return Layer{}, fmt.Errorf("index %d: %w", i, ErrLayerIndexOutOfRange)
	}
	return n.layers[i], nil
}

// Eval propagates x through every layer in order and returns the network's
// output. Returns ErrInputShapeMismatch if len(x) != InputSize().
//
// Complexity: O(sum_i rows_i * cols_i).
func (n *Network) Eval(x []float64) ([]float64, error) {
	if len(x) != n.inDim {
		return nil, fmt.Errorf("got %d, want %d: %w", len(x), n.inDim, ErrInputShapeMismatch)
	}

	cur := make([]float64, len(x))
	copy(cur, x)

	for _, l := range n.layers {
		next := make([]float64, l.OutputSize())
		for i := 0; i < l.W.Rows(); i++ {
			acc := l.B[i]
			for j := 0; j < l.W.Cols(); j++ {
				w, _ := l.W.At(i, j)
				acc += w * cur[j]
			}
			next[i] = acc
		}
		l.Act.apply(next)
		cur = next
	}

	return cur, nil
}
