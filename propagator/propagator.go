package propagator

import (
	"context"

	"github.com/lmarchetti/reachtube/ffnet"
	"github.com/lmarchetti/reachtube/vecbox"
)

// Propagator computes a sound over-approximation of a feed-forward
// network's output given a box input set.
type Propagator interface {
	// Name identifies the propagator variant, matching the name it
	// was registered under (e.g. "IBP", "CROWN").
	Name() string
	// Bound returns a box that soundly contains {net.Eval(x) : x in
	// input}. The result is always a box, in the network's output
	// coordinates, pre-saturation. ctx is checked before the call
	// does any work, so a deadline that has already passed is
	// observed instead of spending a propagator call anyway.
	Bound(ctx context.Context, input *vecbox.Box, net *ffnet.Network) (*vecbox.Box, error)
}

var registry = map[string]func(Option) Propagator{}

func init() {
	Register("IBP", func(opt Option) Propagator { return newIBP(opt) })
	Register("CROWN", func(opt Option) Propagator { return newLinearRelax("CROWN", crownSlope, opt) })
	Register("FastLin", func(opt Option) Propagator { return newLinearRelax("FastLin", fastLinSlope, opt) })
	Register("SDP", func(opt Option) Propagator { return newSDP(opt) })
}

// Register associates a constructor with a name so New can build
// propagators by string key, e.g. from a Configuration value.
// Registering the same name twice panics, mirroring the reference
// corpus's fail-fast-on-programmer-error option style; this is a
// package-init-time concern, not a runtime one.
func Register(name string, ctor func(Option) Propagator) {
	if _, exists := registry[name]; exists {
		panic("propagator: " + name + ": " + ErrAlreadyRegistered.Error())
	}
	registry[name] = ctor
}

// New builds the named propagator, applying opts over DefaultConfig.
// Returns ErrUnknownPropagator wrapped with the requested name when
// no constructor is registered under it.
func New(name string, opts ...Option) (Propagator, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, &nameError{name: name, err: ErrUnknownPropagator}
	}
	merged := func(c *config) {
		for _, opt := range opts {
			opt(c)
		}
	}
	return ctor(merged), nil
}

type nameError struct {
	name string
	err  error
}

func (e *nameError) Error() string { return "propagator: " + e.name + ": " + e.err.Error() }
func (e *nameError) Unwrap() error { return e.err }
