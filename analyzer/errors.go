package analyzer

import "errors"

// ErrUnsupportedDirection is returned when a Configuration's Direction
// field does not match the function being called (e.g. Direction =
// "backward" passed to Forward).
var ErrUnsupportedDirection = errors.New("analyzer: configuration direction does not match call")

// Exit-code constants an external CLI caller may map onto process exit
// statuses. analyzer itself never calls os.Exit; it only names these
// so a caller doesn't have to invent its own numbering.
const (
	ExitOK                 = 0
	ExitConfigError        = 2
	ExitSolverError        = 3
	ExitDeadlineNoProgress = 4
)
