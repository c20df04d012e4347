package session

import (
	"testing"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/talkincode/latencyglobe/config"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/domain"
)

func testSession(t *testing.T) *Session {
	t.Helper()

	exchanges := []domain.Exchange{
		{ID: "x1", Name: "Alpha", CloudProvider: domain.ProviderAWS,
			Location: domain.Location{Lat: 1, Lng: 2, City: "London", Country: "UK"}},
		{ID: "x2", Name: "Beta", CloudProvider: domain.ProviderGCP,
			Location: domain.Location{Lat: 3, Lng: 4, City: "Tokyo", Country: "Japan"}},
		{ID: "x3", Name: "Gamma", CloudProvider: domain.ProviderAzure,
			Location: domain.Location{Lat: 5, Lng: 6, City: "Singapore", Country: "Singapore"}},
	}
	cat, err := catalog.NewFrom(exchanges, nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	cfg := config.SimConfig{
		RefreshInterval:           10,
		SearchDebounceMs:          10,
		LatencyModel:              "uniform",
		ExchangeRegionProbability: 0.3,
		CrossProviderProbability:  0.1,
		HistoryPoints:             20,
		RetentionHours:            1,
	}

	s, err := New(cat, cfg, evbus.New())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := testSession(t)

	filter, version := s.Filter()
	if len(filter.Exchanges) != 3 {
		t.Errorf("default selection = %d exchanges, want 3", len(filter.Exchanges))
	}
	if version != 0 {
		t.Errorf("initial filter version = %d, want 0", version)
	}
	if s.Query() != "" {
		t.Errorf("initial query = %q, want empty", s.Query())
	}

	batch := s.Batch()
	if batch.ID == "" || len(batch.Samples) != 3 {
		t.Errorf("initial batch = %q with %d samples, want C(3,2) = 3", batch.ID, len(batch.Samples))
	}
}

func TestRefreshReplacesBatch(t *testing.T) {
	s := testSession(t)

	before := s.Batch()
	s.Refresh()
	after := s.Batch()

	if before.ID == after.ID {
		t.Error("refresh should mint a new batch id")
	}
	if len(after.Samples) != 3 {
		t.Errorf("refreshed batch has %d samples, want 3", len(after.Samples))
	}
}

func TestSetFilterPartialMerge(t *testing.T) {
	s := testSession(t)

	show := false
	r := domain.LatencyRange{Min: 10, Max: 50}
	got := s.SetFilter(FilterPatch{
		LatencyRange: &r,
		ShowRegions:  &show,
	})

	if got.LatencyRange != r {
		t.Errorf("LatencyRange = %v, want %v", got.LatencyRange, r)
	}
	if got.ShowRegions {
		t.Error("ShowRegions should be off after patch")
	}
	// Untouched fields keep their values
	if len(got.Exchanges) != 3 || !got.ShowRealtime || !got.ShowHistorical {
		t.Error("patch mutated fields it did not carry")
	}

	_, version := s.Filter()
	if version != 1 {
		t.Errorf("filter version = %d, want 1 after one mutation", version)
	}
}

func TestSelectAllClearAll(t *testing.T) {
	s := testSession(t)

	cleared := s.ClearAll()
	if len(cleared.Exchanges) != 0 || len(cleared.CloudProviders) != 0 {
		t.Error("clear-all should empty both selections")
	}
	if cleared.ShowRealtime || cleared.ShowHistorical || cleared.ShowRegions {
		t.Error("clear-all should turn every view category off")
	}
	if cleared.LatencyRange != domain.DefaultLatencyRange() {
		t.Errorf("clear-all range = %v, want default", cleared.LatencyRange)
	}

	if view := s.View(); len(view.Exchanges) != 0 || len(view.Connections) != 0 {
		t.Error("cleared filter should derive an empty view")
	}

	selected := s.SelectAll()
	if len(selected.Exchanges) != 3 || len(selected.CloudProviders) != 3 {
		t.Error("select-all should restore full selections")
	}
	if view := s.View(); len(view.Exchanges) != 3 {
		t.Errorf("select-all view has %d exchanges, want 3", len(view.Exchanges))
	}
}

func TestToggleExchange(t *testing.T) {
	s := testSession(t)

	if selected := s.ToggleExchange("x2"); selected {
		t.Error("first toggle should deselect x2")
	}
	filter, _ := s.Filter()
	if filter.HasExchange("x2") {
		t.Error("x2 still selected after toggle")
	}

	if selected := s.ToggleExchange("x2"); !selected {
		t.Error("second toggle should reselect x2")
	}
}

func TestToggleProvider(t *testing.T) {
	s := testSession(t)

	if selected := s.ToggleProvider(domain.ProviderGCP); selected {
		t.Error("first toggle should deselect GCP")
	}

	view := s.View()
	for _, e := range view.Exchanges {
		if e.CloudProvider == domain.ProviderGCP {
			t.Errorf("exchange %s visible with GCP deselected", e.ID)
		}
	}

	if selected := s.ToggleProvider(domain.ProviderGCP); !selected {
		t.Error("second toggle should reselect GCP")
	}
}

func TestSearchDebounce(t *testing.T) {
	s := testSession(t)

	s.Search("lon")
	s.Search("lond")
	s.Search("london")
	if q := s.Query(); q != "" {
		t.Errorf("query committed before quiet period: %q", q)
	}

	time.Sleep(100 * time.Millisecond)
	if q := s.Query(); q != "london" {
		t.Errorf("query = %q, want london after debounce", q)
	}

	view := s.View()
	if len(view.Exchanges) != 1 || view.Exchanges[0].ID != "x1" {
		t.Errorf("search view = %v, want only x1 (London)", view.Exchanges)
	}
}

func TestCommitSearchNow(t *testing.T) {
	s := testSession(t)

	s.Search("tokyo")
	s.CommitSearchNow()

	if q := s.Query(); q != "tokyo" {
		t.Errorf("query = %q, want tokyo immediately after commit", q)
	}
}

func TestViewMemoization(t *testing.T) {
	s := testSession(t)

	s.View()
	s.View()
	s.View()

	hits, misses := s.EngineStats()
	if misses < 1 {
		t.Errorf("misses = %d, want at least the initial computation", misses)
	}
	if hits < 2 {
		t.Errorf("hits = %d, want repeated calls served from cache", hits)
	}

	// A filter mutation must invalidate the memo key
	_, before := s.EngineStats()
	s.ToggleExchange("x1")
	s.View()
	_, after := s.EngineStats()
	if after <= before {
		t.Error("filter mutation did not trigger recomputation")
	}
}

func TestRecentReturnsRecordedSeries(t *testing.T) {
	s := testSession(t)

	batch := s.Batch()
	if len(batch.Samples) == 0 {
		t.Fatal("expected samples in the initial batch")
	}
	target := batch.Samples[0]

	points, err := s.Recent(target.ID, target.Timestamp-1000, target.Timestamp+1000)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(points) == 0 {
		t.Fatal("expected at least one recorded point")
	}
	if points[0].LatencyMs != target.LatencyMs {
		t.Errorf("recorded latency = %v, want %v", points[0].LatencyMs, target.LatencyMs)
	}

	// Unknown connection yields an empty series, not an error
	points, err = s.Recent("ghost", 0, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Recent(ghost): %v", err)
	}
	if len(points) != 0 {
		t.Errorf("ghost series = %v, want empty", points)
	}
}

func TestHistoryWindow(t *testing.T) {
	s := testSession(t)

	now := time.Now()
	points := s.History("x1", "x2", domain.TimeRange1h, now)
	if len(points) != 20 {
		t.Fatalf("point count = %d, want configured 20", len(points))
	}
	if last := points[len(points)-1].Timestamp; last != now.UnixMilli() {
		t.Errorf("newest point = %d, want %d", last, now.UnixMilli())
	}
}
