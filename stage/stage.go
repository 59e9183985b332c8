// Package stage gates operations on the active deployment stage.
package stage

import "slices"

// ShouldExecute reports whether an operation configured for the given stages
// should run while current is active. An empty configuration means the
// operation runs everywhere.
func ShouldExecute(current string, configured []string) bool {
	if len(configured) == 0 {
		return true
	}
	return slices.Contains(configured, current)
}
