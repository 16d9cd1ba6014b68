package renderer

import (
	"regexp"
	"testing"

	"github.com/dshills/gridterm/internal/debug"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// stripANSI removes colour sequences from s.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// expectContractPanic fails the test unless fn panics with a contract violation.
func expectContractPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	if !debug.Enabled {
		t.Skip("contract checks disabled in release builds")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic", name)
			return
		}
		if _, ok := r.(*debug.ContractError); !ok {
			t.Errorf("%s: expected *debug.ContractError, got %T: %v", name, r, r)
		}
	}()
	fn()
}
