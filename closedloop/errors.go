package closedloop

import "errors"

// ErrUnsupportedConstraintType is returned when Step receives an
// input constraint that is not a *vecbox.Box; box arithmetic is the
// only representation the propagator/dynamics pipeline carries a
// state set in.
var ErrUnsupportedConstraintType = errors.New("closedloop: input constraint must be a box")
