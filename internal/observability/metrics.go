package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	requestMillis map[string]int64
	errorCount    map[string]int64
	decisionCount map[string]int64
}

// Snapshot is a point-in-time copy of every counter.
type Snapshot struct {
	Requests       map[string]int64 `json:"requests"`
	RequestMillis  map[string]int64 `json:"request_millis"`
	Errors         map[string]int64 `json:"errors"`
	GuardDecisions map[string]int64 `json:"guard_decisions"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		requestMillis: make(map[string]int64),
		errorCount:    make(map[string]int64),
		decisionCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.requestMillis[key] += duration.Milliseconds()
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordDecision counts guard outcomes per action. Denials are keyed by
// their code, approvals by "ALLOWED".
func (m *Metrics) RecordDecision(action string, allowed bool, code string) {
	if m == nil {
		return
	}
	if allowed {
		code = "ALLOWED"
	}
	if action == "" {
		action = "none"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisionCount[action+"|"+code]++
}

// Snapshot copies the counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Requests:       copyCounts(m.requestCount),
		RequestMillis:  copyCounts(m.requestMillis),
		Errors:         copyCounts(m.errorCount),
		GuardDecisions: copyCounts(m.decisionCount),
	}
}

func copyCounts(src map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
