package propagator

import "errors"

// ErrUnknownPropagator is returned by New when no constructor was
// registered under the requested name.
var ErrUnknownPropagator = errors.New("propagator: unknown propagator name")

// ErrAlreadyRegistered is returned by Register when the given name
// already has a constructor.
var ErrAlreadyRegistered = errors.New("propagator: name already registered")

// ErrNilSolver's message is the panic value raised when the SDP
// propagator is constructed (New("SDP")) without a Solver
// collaborator; it is not returned as an error.
var ErrNilSolver = errors.New("propagator: SDP propagator requires a non-nil solver")

// ErrInputDimMismatch is returned by Bound when the input box's
// dimension does not match the network's declared input size.
var ErrInputDimMismatch = errors.New("propagator: input box dimension does not match network input size")
