package monitoring

import (
	"sync"
	"time"
)

// Monitor keeps lightweight in-process counters for the JSON status endpoint.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance.
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value.
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// IncrementMetric adds one to an integer counter.
func (m *Monitor) IncrementMetric(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	count, _ := m.metrics[name].(int)
	m.metrics[name] = count + 1
}

// RecordEstimate records the latest gateway round trip under the given kind.
func (m *Monitor) RecordEstimate(kind string, duration time.Duration, err error) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	prefix := "estimate_" + kind + "_"
	count, _ := m.metrics[prefix+"requests"].(int)
	m.metrics[prefix+"requests"] = count + 1
	m.metrics[prefix+"last_duration_ms"] = duration.Milliseconds()
	if err != nil {
		failures, _ := m.metrics[prefix+"failures"].(int)
		m.metrics[prefix+"failures"] = failures + 1
		m.metrics[prefix+"last_error"] = err.Error()
	}
	m.metrics[prefix+"last_at"] = time.Now().Format(time.RFC3339)
}

// GetMetric returns a specific metric value.
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics.
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics.
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}
