package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRecorder(t *testing.T) {
	rec := NewMemoryRecorder()

	rec.RecordAction("deposit", "committed")
	rec.RecordAction("deposit", "committed")
	rec.RecordAction("withdrawal", "failed_locked")
	rec.RecordDecodeRejected()
	rec.RecordRun("completed", time.Second)

	assert.Equal(t, int64(2), rec.Actions("deposit", "committed"))
	assert.Equal(t, int64(1), rec.Actions("withdrawal", "failed_locked"))
	assert.Equal(t, int64(0), rec.Actions("dispute", "noop"))
	assert.Equal(t, int64(1), rec.DecodeRejected())
	assert.Equal(t, int64(1), rec.Runs("completed"))
}

func TestNoOpRecorder(t *testing.T) {
	var rec Recorder = NoOpRecorder{}
	rec.RecordAction("deposit", "committed")
	rec.RecordDecodeRejected()
	rec.RecordRun("failed", 0)
}
