// Package model contains core data types for the project.
package model

import (
	"fmt"
	"time"
)

// StartupLine is the first line the probe writes to its output stream,
// exactly once, before the counter ever increments.
const StartupLine = "Starting loop..."

// Status is a single liveness report: the loop counter at the moment
// the report was produced.
type Status struct {
	Count uint64    // Loop counter value, always > 0 and a multiple of the report interval.
	At    time.Time // Wall-clock emission time.
}

// String renders the canonical report line for the status.
func (s Status) String() string {
	return fmt.Sprintf("Loop count: %d", s.Count)
}
