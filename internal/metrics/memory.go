package metrics

import (
	"sync"
	"time"
)

// MemoryRecorder keeps counts in memory, for tests.
type MemoryRecorder struct {
	mu sync.RWMutex

	actions        map[string]map[string]int64
	decodeRejected int64
	runs           map[string]int64
	runDurations   []time.Duration
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		actions: make(map[string]map[string]int64),
		runs:    make(map[string]int64),
	}
}

func (m *MemoryRecorder) RecordAction(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.actions[kind]; !exists {
		m.actions[kind] = make(map[string]int64)
	}
	m.actions[kind][outcome]++
}

func (m *MemoryRecorder) RecordDecodeRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.decodeRejected++
}

func (m *MemoryRecorder) RecordRun(status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[status]++
	m.runDurations = append(m.runDurations, duration)
}

func (m *MemoryRecorder) Actions(kind, outcome string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.actions[kind][outcome]
}

func (m *MemoryRecorder) DecodeRejected() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.decodeRejected
}

func (m *MemoryRecorder) Runs(status string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.runs[status]
}
