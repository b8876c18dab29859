package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanoutWriter duplicates every write to all of its sinks. A failing sink
// does not stop the others; its error is folded into the returned error.
// The reported byte count is the smallest count any sink accepted, so a
// partial write anywhere surfaces to the caller.
type FanoutWriter struct {
	sinks []io.Writer
}

func NewFanoutWriter(sinks ...io.Writer) *FanoutWriter {
	return &FanoutWriter{
		sinks: sinks,
	}
}

func (fw *FanoutWriter) Write(p []byte) (int, error) {
	var errs error
	minWritten := len(p)
	for _, sink := range fw.sinks {
		written, err := sink.Write(p)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		if written < minWritten {
			minWritten = written
		}
	}
	return minWritten, errs
}
