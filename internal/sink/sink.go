// Package sink writes the probe's line protocol to an output stream.
package sink

import (
	"fmt"
	"io"

	"github.com/and161185/liveness-probe/model"
)

// Flusher is implemented by buffered writers that need an explicit
// flush before a line reaches the consumer.
type Flusher interface {
	Flush() error
}

// LineSink writes one line per call. When the underlying writer is
// buffered it is flushed after every line, so a monitoring process
// reading the stream sees each line promptly.
type LineSink struct {
	w io.Writer
}

// New wraps the stream the probe reports to.
func New(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

// Announce writes the one-time startup line.
func (s *LineSink) Announce() error {
	return s.writeLine(model.StartupLine)
}

// Report writes a single status line.
func (s *LineSink) Report(st model.Status) error {
	return s.writeLine(st.String())
}

func (s *LineSink) writeLine(line string) error {
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if f, ok := s.w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}
