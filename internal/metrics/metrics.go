// Package metrics provides the Recorder interface and a noop implementation.
package metrics

import "time"

// Recorder is the interface for recording operational metrics.
// The op label is "load" or "dump"; format is the resolved format tag.
type Recorder interface {
	RecordLatency(op, format string, d time.Duration)
	RecordError(op, format string)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordLatency(op, format string, d time.Duration) {}
func (Noop) RecordError(op, format string)                    {}
