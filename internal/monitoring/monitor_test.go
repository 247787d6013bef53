package monitoring

import (
	"errors"
	"testing"
	"time"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	// Check if our metric is present
	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	// Check value
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	// Check uptime presence
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_IncrementMetric(t *testing.T) {
	m := NewMonitor()

	m.IncrementMetric("counter")
	m.IncrementMetric("counter")

	value, exists := m.GetMetric("counter")
	if !exists {
		t.Fatalf("Expected 'counter' to be present in metrics, but it was not")
	}
	if value != 2 {
		t.Errorf("Expected 'counter' to be 2, but got %v", value)
	}
}

func TestMonitor_RecordEstimate(t *testing.T) {
	m := NewMonitor()

	m.RecordEstimate("image", 250*time.Millisecond, nil)
	m.RecordEstimate("image", 400*time.Millisecond, errors.New("model timeout"))

	metrics := m.GetMetrics()

	// Check if metrics are recorded with the proper prefix
	value, exists := metrics["estimate_image_requests"]
	if !exists {
		t.Fatalf("Expected 'estimate_image_requests' to be present in metrics, but it was not")
	}
	if value != 2 {
		t.Errorf("Expected 'estimate_image_requests' to be 2, but got %v", value)
	}

	failures, exists := metrics["estimate_image_failures"]
	if !exists || failures != 1 {
		t.Errorf("Expected 'estimate_image_failures' to be 1, but got %v", failures)
	}

	if metrics["estimate_image_last_error"] != "model timeout" {
		t.Errorf("Expected last error to be recorded, got %v", metrics["estimate_image_last_error"])
	}

	// Check timestamp is recorded
	_, exists = metrics["estimate_image_last_at"]
	if !exists {
		t.Errorf("Expected 'estimate_image_last_at' to be present in metrics, but it was not")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	// Our test metric should be gone, but uptime should still be there
	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime should still be present (it's added on GetMetrics call)
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}
