package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		duration   float64
		success    bool
		statusCode int
		wantCode   string
	}{
		{
			name:      "successful API call",
			operation: "list",
			duration:  0.1,
			success:   true,
		},
		{
			name:       "not found",
			operation:  "get_by_slug",
			duration:   0.05,
			success:    false,
			statusCode: 404,
			wantCode:   "404",
		},
		{
			name:      "transport failure",
			operation: "schema",
			duration:  0.5,
			success:   false,
			wantCode:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.operation, tt.duration, tt.success, tt.statusCode)

			status := "success"
			if !tt.success {
				status = "error"
			}
			counter, err := ContentAPIRequestsTotal.GetMetricWithLabelValues(tt.operation, status)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}

			if tt.wantCode != "" {
				errCounter, err := ContentAPIErrors.GetMetricWithLabelValues(tt.operation, tt.wantCode)
				if err != nil {
					t.Fatalf("failed to get error metric: %v", err)
				}

				var em dto.Metric
				if err := errCounter.Write(&em); err != nil {
					t.Fatalf("failed to write error metric: %v", err)
				}

				if em.Counter.GetValue() < 1 {
					t.Error("expected error counter to be incremented")
				}
			}
		})
	}
}

func TestRecordBatch(t *testing.T) {
	before := getHistogramCount(t, BatchSize)

	RecordBatch(3)
	RecordBatch(12)

	if got := getHistogramCount(t, BatchSize); got != before+2 {
		t.Errorf("batch size sample count = %d, want %d", got, before+2)
	}
}

func TestRecordContentSize(t *testing.T) {
	RecordContentSize("list", 2048)

	observer, err := ContentSize.GetMetricWithLabelValues("list")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	var m dto.Metric
	if err := observer.(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Histogram.GetSampleCount() < 1 {
		t.Error("expected content size to be observed")
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		PanicsRecovered,
		ContentAPILatency,
		ContentAPIRequestsTotal,
		ContentAPIErrors,
		BatchSize,
		ContentSize,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "notion_cms_mcp" {
		t.Errorf("expected namespace 'notion_cms_mcp', got '%s'", Namespace)
	}
}

// Helper to get histogram sample count
func getHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Histogram.GetSampleCount()
}
