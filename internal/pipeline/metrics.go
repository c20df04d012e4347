package pipeline

import (
	"github.com/montanaflynn/stats"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// Health classification thresholds over the average visible latency
const (
	healthCriticalMs = 150
	healthWarningMs  = 100
)

// ComputeMetrics aggregates a derived view into the metrics panel figures.
// An empty connection set yields zero latency figures and good health.
func ComputeMetrics(view domain.DerivedView) domain.PerformanceMetrics {
	m := domain.PerformanceMetrics{
		TotalExchanges:    len(view.Exchanges),
		TotalRegions:      len(view.Regions),
		ActiveConnections: len(view.Connections),
		SystemHealth:      domain.HealthGood,
	}
	if len(view.Connections) == 0 {
		return m
	}

	lats := make([]float64, 0, len(view.Connections))
	for _, c := range view.Connections {
		lats = append(lats, c.LatencyMs)
	}

	m.AverageLatency, _ = stats.Mean(lats)
	m.MinLatency, _ = stats.Min(lats)
	m.MaxLatency, _ = stats.Max(lats)
	m.P95Latency, _ = stats.Percentile(lats, 95)

	switch {
	case m.AverageLatency > healthCriticalMs:
		m.SystemHealth = domain.HealthCritical
	case m.AverageLatency > healthWarningMs:
		m.SystemHealth = domain.HealthWarning
	}
	return m
}
