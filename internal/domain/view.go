package domain

// DerivedView is the filtered, referentially consistent subset of the catalog
// and the current batch, ready for rendering or export. Every connection's
// endpoints resolve to a member of Exchanges or Regions.
type DerivedView struct {
	Exchanges   []Exchange      `json:"exchanges"`
	Regions     []CloudRegion   `json:"regions"`
	Connections []LatencySample `json:"connections"`
}

// SystemHealth classifies the average latency of the visible connections
type SystemHealth string

const (
	HealthGood     SystemHealth = "good"
	HealthWarning  SystemHealth = "warning"
	HealthCritical SystemHealth = "critical"
)

// PerformanceMetrics are the aggregate figures shown in the metrics panel
type PerformanceMetrics struct {
	TotalExchanges    int          `json:"totalExchanges"`
	TotalRegions      int          `json:"totalRegions"`
	ActiveConnections int          `json:"activeConnections"`
	AverageLatency    float64      `json:"averageLatency"`
	MinLatency        float64      `json:"minLatency"`
	MaxLatency        float64      `json:"maxLatency"`
	P95Latency        float64      `json:"p95Latency"`
	SystemHealth      SystemHealth `json:"systemHealth"`
}

// SuggestionKind labels a search suggestion source
type SuggestionKind string

const (
	SuggestExchange SuggestionKind = "exchange"
	SuggestRegion   SuggestionKind = "region"
	SuggestProvider SuggestionKind = "provider"
	SuggestCity     SuggestionKind = "city"
	SuggestCountry  SuggestionKind = "country"
)

// Suggestion is one search autocomplete candidate
type Suggestion struct {
	Kind  SuggestionKind `json:"kind"`
	Value string         `json:"value"`
	Label string         `json:"label"`
}
