// Package buildinfo reports ldflags-injected build metadata.
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

// Print writes the build metadata to w. The probe passes stderr: the
// first stdout line is reserved for the startup announcement.
func Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(BuildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(BuildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(BuildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
