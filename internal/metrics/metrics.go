package metrics

import (
	"time"
)

// Recorder collects ledger metrics. Implementations can export them to
// various backends.
type Recorder interface {
	// RecordAction counts one applied action by kind and outcome
	// (committed, noop, failed_<reason>, rejected_<kind>).
	RecordAction(kind, outcome string)

	// RecordDecodeRejected counts one input record that could not be decoded.
	RecordDecodeRejected()

	// RecordRun records a finished batch run.
	RecordRun(status string, duration time.Duration)
}

// NoOpRecorder is the default Recorder when metrics are not needed.
type NoOpRecorder struct{}

func (NoOpRecorder) RecordAction(kind, outcome string) {}

func (NoOpRecorder) RecordDecodeRejected() {}

func (NoOpRecorder) RecordRun(status string, duration time.Duration) {}
