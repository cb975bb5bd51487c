package reachconfig

import "errors"

// ErrMissingField is wrapped by ConfigError when a required field is
// left at its zero value.
var ErrMissingField = errors.New("reachconfig: missing required field")

// ErrUnknownEnumValue is wrapped by ConfigError when a string enum
// field does not match any recognized value.
var ErrUnknownEnumValue = errors.New("reachconfig: unknown enum value")

// ErrInvalidValue is wrapped by ConfigError when a field's value is
// structurally well-typed but out of its valid range (T_max < 1, a
// non-positive partition count, and similar).
var ErrInvalidValue = errors.New("reachconfig: invalid value")

// ConfigError reports one invalid Configuration field: which field,
// what was wrong, and the sentinel category it wraps.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "reachconfig: field " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
