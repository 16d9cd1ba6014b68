//go:build release

package debug

// Enabled reports whether contract checks run in this build.
const Enabled = false
