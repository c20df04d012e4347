package domain

// ConnectionKind classifies a latency sample by its endpoint categories
type ConnectionKind string

const (
	KindExchangeToExchange ConnectionKind = "exchange-to-exchange"
	KindExchangeToRegion   ConnectionKind = "exchange-to-region"
	KindRegionToRegion     ConnectionKind = "region-to-region"
)

// LatencySample is one simulated measurement between two entity ids
type LatencySample struct {
	ID        string         `json:"id"`        // Derived from the endpoint pair
	FromID    string         `json:"fromId"`    // Source entity id
	ToID      string         `json:"toId"`      // Target entity id
	LatencyMs float64        `json:"latency"`   // Positive latency in milliseconds
	Timestamp int64          `json:"timestamp"` // Generation time, epoch millis
	Kind      ConnectionKind `json:"type"`      // Endpoint categories
}

// Batch is one full generation run. A new batch replaces its predecessor
// wholesale; samples are never merged incrementally.
type Batch struct {
	ID          string          `json:"id"`          // Snowflake batch id
	GeneratedAt int64           `json:"generatedAt"` // Shared sample timestamp, epoch millis
	Samples     []LatencySample `json:"samples"`
}

// HistoricalPoint is one point of a synthetic historical series
type HistoricalPoint struct {
	Timestamp int64   `json:"timestamp"` // Epoch millis
	LatencyMs float64 `json:"latency"`   // Always >= 1
}

// TimeRange is a requested historical window
type TimeRange string

const (
	TimeRange1h  TimeRange = "1h"
	TimeRange24h TimeRange = "24h"
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
)

// Hours returns the window span in hours, 0 for an unknown range
func (r TimeRange) Hours() int {
	switch r {
	case TimeRange1h:
		return 1
	case TimeRange24h:
		return 24
	case TimeRange7d:
		return 168
	case TimeRange30d:
		return 720
	}
	return 0
}

// ParseTimeRange resolves a window token, defaulting to 24h for empty input
func ParseTimeRange(s string) (TimeRange, bool) {
	if s == "" {
		return TimeRange24h, true
	}
	r := TimeRange(s)
	return r, r.Hours() > 0
}

// NetworkQuality grades a single connection latency
type NetworkQuality string

const (
	QualityExcellent NetworkQuality = "excellent"
	QualityGood      NetworkQuality = "good"
	QualityFair      NetworkQuality = "fair"
	QualityPoor      NetworkQuality = "poor"
	QualityCritical  NetworkQuality = "critical"
)

// ClassifyQuality grades a latency value in milliseconds
func ClassifyQuality(latencyMs float64) NetworkQuality {
	switch {
	case latencyMs < 20:
		return QualityExcellent
	case latencyMs < 50:
		return QualityGood
	case latencyMs < 100:
		return QualityFair
	case latencyMs < 200:
		return QualityPoor
	}
	return QualityCritical
}
