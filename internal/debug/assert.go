// Package debug provides contract checks that are compiled out of release builds.
//
// Contract violations (malformed glyphs, out-of-bounds draws, degenerate
// regions) are programmer errors. They panic while Enabled is true and are
// skipped entirely when the module is built with the "release" tag:
//
//	go build -tags release ./...
//
// Callers must never rely on a check for control flow. Arguments are
// evaluated even when checks are off, so hot paths guard the call:
//
//	if debug.Enabled {
//		debug.Assert(ok, "unit %q", r)
//	}
package debug

import "fmt"

// ContractError is the panic value raised by a failed assertion.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string {
	return "contract violation: " + e.Message
}

// Assert panics with a *ContractError when cond is false and checks are enabled.
func Assert(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(&ContractError{Message: fmt.Sprintf(format, args...)})
}
