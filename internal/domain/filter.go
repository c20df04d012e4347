package domain

// LatencyRange is an inclusive latency band in milliseconds. Min > Max is
// deliberately not rejected: every sample fails the band test and the
// connection set goes empty, matching the interactive behavior.
type LatencyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultLatencyRange is the full band shown before any user adjustment
func DefaultLatencyRange() LatencyRange {
	return LatencyRange{Min: 0, Max: 1000}
}

// Contains reports whether v falls inside the inclusive band
func (r LatencyRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterState is the user-adjustable view configuration. The free-text search
// query lives outside it, committed separately after a debounce.
type FilterState struct {
	Exchanges      []string        `json:"exchanges"`      // Selected exchange ids
	CloudProviders []CloudProvider `json:"cloudProviders"` // Selected providers
	LatencyRange   LatencyRange    `json:"latencyRange"`   // Inclusive band
	ShowRealtime   bool            `json:"showRealtime"`   // Realtime view category
	ShowHistorical bool            `json:"showHistorical"` // Historical view category
	ShowRegions    bool            `json:"showRegions"`    // Region markers and arcs
}

// DefaultFilterState selects everything
func DefaultFilterState(exchangeIDs []string) FilterState {
	ids := make([]string, len(exchangeIDs))
	copy(ids, exchangeIDs)
	return FilterState{
		Exchanges:      ids,
		CloudProviders: AllProviders(),
		LatencyRange:   DefaultLatencyRange(),
		ShowRealtime:   true,
		ShowHistorical: true,
		ShowRegions:    true,
	}
}

// HasExchange reports selection membership of an exchange id
func (f FilterState) HasExchange(id string) bool {
	for _, v := range f.Exchanges {
		if v == id {
			return true
		}
	}
	return false
}

// HasProvider reports selection membership of a provider
func (f FilterState) HasProvider(p CloudProvider) bool {
	for _, v := range f.CloudProviders {
		if v == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand across goroutines
func (f FilterState) Clone() FilterState {
	out := f
	out.Exchanges = append([]string(nil), f.Exchanges...)
	out.CloudProviders = append([]CloudProvider(nil), f.CloudProviders...)
	return out
}
