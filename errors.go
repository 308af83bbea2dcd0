package stdcell

import (
	"errors"
	"fmt"
)

// Sentinel errors for stdcell package. Callers branch with errors.Is.
var (
	// ErrInvalidParameter is matched by every error caused by a bad
	// electrical parameter: non-positive gate width, folding factor below
	// one, or an unknown device type.
	ErrInvalidParameter = errors.New("stdcell: invalid parameter")

	// ErrConfig is matched by every error caused by an unusable process
	// configuration, such as an unknown process name.
	ErrConfig = errors.New("stdcell: configuration error")
)

// ParameterError describes one rejected parameter. It matches
// ErrInvalidParameter.
type ParameterError struct {
	Op     string // builder entry point, e.g. "Transistor"
	Name   string // parameter name, e.g. "gateWidth"
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("stdcell: %s: invalid %s %v: %s", e.Op, e.Name, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameter.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ConfigError wraps a process configuration failure. It matches ErrConfig
// and unwraps to the underlying drt error.
type ConfigError struct {
	Process string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Process == "" {
		return "stdcell: config: " + e.Err.Error()
	}
	return fmt.Sprintf("stdcell: config %q: %v", e.Process, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
