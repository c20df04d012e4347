// Package pipeline derives the filtered, referentially consistent view of
// the topology consumed by every presentation surface: globe, metrics panel,
// chart selection and spreadsheet export. DeriveView is a pure function of
// its inputs so recomputation can be memoized and tested directly.
package pipeline

import (
	"strings"
	"time"

	"github.com/talkincode/latencyglobe/internal/domain"
)

// RealtimeWindow separates realtime from historical samples on the export
// path: samples newer than this are realtime.
const RealtimeWindow = 5 * time.Minute

// DeriveView computes the visible subset of the topology. Order of the
// steps matters for correctness: candidate entities first, then connection
// filtering against the resolved candidate set.
func DeriveView(exchanges []domain.Exchange, regions []domain.CloudRegion,
	samples []domain.LatencySample, filter domain.FilterState, query string) domain.DerivedView {

	q := strings.ToLower(strings.TrimSpace(query))

	visibleExchanges := make([]domain.Exchange, 0, len(exchanges))
	for _, e := range exchanges {
		if !matchExchange(e, q) {
			continue
		}
		if !filter.HasExchange(e.ID) || !filter.HasProvider(e.CloudProvider) {
			continue
		}
		visibleExchanges = append(visibleExchanges, e)
	}

	// Regions carry no per-id selection list; only provider and search gate
	// them, and ShowRegions drops the whole category from the rendered set.
	visibleRegions := make([]domain.CloudRegion, 0, len(regions))
	if filter.ShowRegions {
		for _, r := range regions {
			if !matchRegion(r, q) {
				continue
			}
			if !filter.HasProvider(r.Provider) {
				continue
			}
			visibleRegions = append(visibleRegions, r)
		}
	}

	visibleIDs := make(map[string]bool, len(visibleExchanges)+len(visibleRegions))
	for _, e := range visibleExchanges {
		visibleIDs[e.ID] = true
	}
	for _, r := range visibleRegions {
		visibleIDs[r.ID] = true
	}

	connections := make([]domain.LatencySample, 0, len(samples))
	for _, s := range samples {
		if !filter.LatencyRange.Contains(s.LatencyMs) {
			continue
		}
		// Connections with a dangling endpoint are dropped, never partially
		// rendered
		if !visibleIDs[s.FromID] || !visibleIDs[s.ToID] {
			continue
		}
		connections = append(connections, s)
	}

	return domain.DerivedView{
		Exchanges:   visibleExchanges,
		Regions:     visibleRegions,
		Connections: connections,
	}
}

// ExportView is the export-path variant: on top of DeriveView it applies the
// realtime/historical time-window split that the live view skips (the live
// view always shows the current batch).
func ExportView(exchanges []domain.Exchange, regions []domain.CloudRegion,
	samples []domain.LatencySample, filter domain.FilterState, query string,
	now time.Time) domain.DerivedView {

	view := DeriveView(exchanges, regions, samples, filter, query)

	threshold := now.Add(-RealtimeWindow).UnixMilli()
	kept := make([]domain.LatencySample, 0, len(view.Connections))
	for _, s := range view.Connections {
		isRealtime := s.Timestamp > threshold
		if (filter.ShowRealtime && isRealtime) || (filter.ShowHistorical && !isRealtime) {
			kept = append(kept, s)
		}
	}
	view.Connections = kept
	return view
}

func matchExchange(e domain.Exchange, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Location.City), q) ||
		strings.Contains(strings.ToLower(e.Location.Country), q) ||
		strings.Contains(strings.ToLower(string(e.CloudProvider)), q)
}

func matchRegion(r domain.CloudRegion, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Location.City), q) ||
		strings.Contains(strings.ToLower(r.Location.Country), q) ||
		strings.Contains(strings.ToLower(string(r.Provider)), q)
}
