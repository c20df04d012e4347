// Package session owns the live dashboard state: the current filter
// configuration, the committed search query and the latest sample batch.
// It is the single writer for all three; the pipeline reads them as
// immutable snapshots. Changes are announced on an event bus so the web
// layer can fan out pushes without coupling to this package.
package session

import (
	"context"
	"sync"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/talkincode/latencyglobe/config"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/domain"
	"github.com/talkincode/latencyglobe/internal/pipeline"
	"github.com/talkincode/latencyglobe/internal/simulate"
	"go.uber.org/zap"
)

// Bus topics published by the session
const (
	TopicBatch  = "latency.batch"  // args: batch id (string)
	TopicFilter = "filter.changed" // args: filter version (uint64)
	TopicView   = "view.changed"   // args: ViewEvent
)

// ViewEvent is the payload published on every derived-view recomputation
type ViewEvent struct {
	BatchID     string                    `json:"batchId"`
	GeneratedAt int64                     `json:"generatedAt"`
	View        domain.DerivedView        `json:"view"`
	Metrics     domain.PerformanceMetrics `json:"metrics"`
}

// FilterPatch is a partial filter update; nil fields are left untouched
type FilterPatch struct {
	Exchanges      *[]string               `json:"exchanges"`
	CloudProviders *[]domain.CloudProvider `json:"cloudProviders"`
	LatencyRange   *domain.LatencyRange    `json:"latencyRange"`
	ShowRealtime   *bool                   `json:"showRealtime"`
	ShowHistorical *bool                   `json:"showHistorical"`
	ShowRegions    *bool                   `json:"showRegions"`
}

// Session is the top-level controller for one dashboard lifetime
type Session struct {
	cfg     config.SimConfig
	catalog *catalog.Catalog
	gen     *simulate.Generator
	hist    *simulate.HistoryGenerator
	engine  pipeline.Engine
	rec     *Recorder
	bus     evbus.Bus

	mu            sync.Mutex
	filter        domain.FilterState
	filterVersion uint64
	query         string
	batch         domain.Batch

	debounceMu   sync.Mutex
	debounce     *time.Timer
	pendingQuery string
	debounceWait time.Duration

	cancel context.CancelFunc
}

// New builds a session: default filter (everything selected), an initial
// sample batch, and an empty search query.
func New(cat *catalog.Catalog, cfg config.SimConfig, bus evbus.Bus) (*Session, error) {
	opts := simulate.Options{
		Model:                     simulate.ParseLatencyModel(cfg.LatencyModel),
		ExchangeRegionProbability: cfg.ExchangeRegionProbability,
		CrossProviderProbability:  cfg.CrossProviderProbability,
	}
	gen, err := simulate.NewGenerator(cat, opts)
	if err != nil {
		return nil, err
	}
	rec, err := NewRecorder(time.Duration(cfg.RetentionHours) * time.Hour)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:          cfg,
		catalog:      cat,
		gen:          gen,
		hist:         simulate.NewHistoryGenerator(cat, cfg.HistoryPoints),
		rec:          rec,
		bus:          bus,
		filter:       domain.DefaultFilterState(cat.ExchangeIDs()),
		debounceWait: time.Duration(cfg.SearchDebounceMs) * time.Millisecond,
	}
	s.Refresh()
	return s, nil
}

// Bus exposes the event bus for subscribers
func (s *Session) Bus() evbus.Bus {
	return s.bus
}

// Start launches the periodic batch refresh. The loop stops when ctx is
// cancelled or Stop is called.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	interval := time.Duration(s.cfg.RefreshInterval) * time.Second
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh()
			}
		}
	}()
	zap.L().Info("session refresh loop started", zap.Duration("interval", interval))
}

// Stop tears the session down: refresh loop, pending search commit and the
// sample recorder.
func (s *Session) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.debounceMu.Lock()
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.debounceMu.Unlock()
	if err := s.rec.Close(); err != nil {
		zap.L().Warn("recorder close failed", zap.Error(err))
	}
}

// Refresh regenerates the sample batch, replacing the previous one wholesale
func (s *Session) Refresh() {
	batch := s.gen.Generate()
	if err := s.rec.Record(batch); err != nil {
		zap.L().Warn("batch record failed", zap.String("batch", batch.ID), zap.Error(err))
	}

	s.mu.Lock()
	s.batch = batch
	s.mu.Unlock()

	s.bus.Publish(TopicBatch, batch.ID)
	s.publishView()
	zap.L().Debug("sample batch refreshed",
		zap.String("batch", batch.ID), zap.Int("samples", len(batch.Samples)))
}

// Filter returns a copy of the current filter state and its version
func (s *Session) Filter() (domain.FilterState, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Clone(), s.filterVersion
}

// Query returns the committed search query
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Batch returns the current sample batch
func (s *Session) Batch() domain.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batch
}

// SetFilter merges a partial update into the filter state. The latency range
// is accepted as-is: an inverted range empties the connection set rather
// than erroring, matching the interactive behavior.
func (s *Session) SetFilter(patch FilterPatch) domain.FilterState {
	s.mu.Lock()
	if patch.Exchanges != nil {
		s.filter.Exchanges = append([]string(nil), (*patch.Exchanges)...)
	}
	if patch.CloudProviders != nil {
		s.filter.CloudProviders = append([]domain.CloudProvider(nil), (*patch.CloudProviders)...)
	}
	if patch.LatencyRange != nil {
		if patch.LatencyRange.Min > patch.LatencyRange.Max {
			zap.L().Warn("latency range min exceeds max, connection set will be empty",
				zap.Float64("min", patch.LatencyRange.Min), zap.Float64("max", patch.LatencyRange.Max))
		}
		s.filter.LatencyRange = *patch.LatencyRange
	}
	if patch.ShowRealtime != nil {
		s.filter.ShowRealtime = *patch.ShowRealtime
	}
	if patch.ShowHistorical != nil {
		s.filter.ShowHistorical = *patch.ShowHistorical
	}
	if patch.ShowRegions != nil {
		s.filter.ShowRegions = *patch.ShowRegions
	}
	out := s.bumpFilterLocked()
	s.mu.Unlock()

	s.publishView()
	return out
}

// SelectAll selects every exchange, all providers, the full latency range
// and every view category.
func (s *Session) SelectAll() domain.FilterState {
	s.mu.Lock()
	s.filter = domain.DefaultFilterState(s.catalog.ExchangeIDs())
	out := s.bumpFilterLocked()
	s.mu.Unlock()

	s.publishView()
	return out
}

// ClearAll empties the exchange and provider selections and turns every view
// category off. The latency range keeps its default band.
func (s *Session) ClearAll() domain.FilterState {
	s.mu.Lock()
	s.filter = domain.FilterState{
		Exchanges:      []string{},
		CloudProviders: []domain.CloudProvider{},
		LatencyRange:   domain.DefaultLatencyRange(),
	}
	out := s.bumpFilterLocked()
	s.mu.Unlock()

	s.publishView()
	return out
}

// ToggleExchange flips one exchange's selection membership and reports the
// new membership.
func (s *Session) ToggleExchange(id string) bool {
	s.mu.Lock()
	selected := false
	if s.filter.HasExchange(id) {
		kept := s.filter.Exchanges[:0]
		for _, v := range s.filter.Exchanges {
			if v != id {
				kept = append(kept, v)
			}
		}
		s.filter.Exchanges = kept
	} else {
		s.filter.Exchanges = append(s.filter.Exchanges, id)
		selected = true
	}
	s.bumpFilterLocked()
	s.mu.Unlock()

	s.publishView()
	return selected
}

// ToggleProvider flips one provider's selection membership and reports the
// new membership.
func (s *Session) ToggleProvider(p domain.CloudProvider) bool {
	s.mu.Lock()
	selected := false
	if s.filter.HasProvider(p) {
		kept := s.filter.CloudProviders[:0]
		for _, v := range s.filter.CloudProviders {
			if v != p {
				kept = append(kept, v)
			}
		}
		s.filter.CloudProviders = kept
	} else {
		s.filter.CloudProviders = append(s.filter.CloudProviders, p)
		selected = true
	}
	s.bumpFilterLocked()
	s.mu.Unlock()

	s.publishView()
	return selected
}

func (s *Session) bumpFilterLocked() domain.FilterState {
	s.filterVersion++
	out := s.filter.Clone()
	s.bus.Publish(TopicFilter, s.filterVersion)
	return out
}

// Search schedules a query commit after the debounce quiet period. Rapid
// keystrokes keep resetting the timer; only the final query commits.
func (s *Session) Search(q string) {
	s.debounceMu.Lock()
	defer s.debounceMu.Unlock()
	s.pendingQuery = q
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.debounceWait, s.commitPendingQuery)
}

// CommitSearchNow commits the pending query immediately, bypassing the
// debounce (used on teardown and in tests).
func (s *Session) CommitSearchNow() {
	s.debounceMu.Lock()
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.debounceMu.Unlock()
	s.commitPendingQuery()
}

func (s *Session) commitPendingQuery() {
	s.debounceMu.Lock()
	q := s.pendingQuery
	s.debounceMu.Unlock()

	s.mu.Lock()
	changed := s.query != q
	s.query = q
	s.mu.Unlock()

	if changed {
		s.publishView()
	}
}

// View derives the current visible subset, memoized on (filter version,
// query, batch id).
func (s *Session) View() domain.DerivedView {
	s.mu.Lock()
	key := pipeline.Key{FilterVersion: s.filterVersion, Query: s.query, BatchID: s.batch.ID}
	filter := s.filter.Clone()
	query := s.query
	samples := s.batch.Samples
	s.mu.Unlock()

	return s.engine.Derive(key, func() domain.DerivedView {
		return pipeline.DeriveView(s.catalog.Exchanges(), s.catalog.Regions(), samples, filter, query)
	})
}

// Metrics aggregates the current view
func (s *Session) Metrics() domain.PerformanceMetrics {
	return pipeline.ComputeMetrics(s.View())
}

// ExportView derives the export variant with the realtime/historical split
func (s *Session) ExportView(now time.Time) domain.DerivedView {
	s.mu.Lock()
	filter := s.filter.Clone()
	query := s.query
	samples := s.batch.Samples
	s.mu.Unlock()

	return pipeline.ExportView(s.catalog.Exchanges(), s.catalog.Regions(), samples, filter, query, now)
}

// History generates a fresh synthetic series for one connection, replacing
// whatever the caller held before.
func (s *Session) History(fromID, toID string, window domain.TimeRange, at time.Time) []domain.HistoricalPoint {
	return s.hist.Series(fromID, toID, window, at)
}

// Recent returns the recorded series for a connection id over [start, end]
func (s *Session) Recent(connID string, start, end int64) ([]domain.HistoricalPoint, error) {
	return s.rec.Recent(connID, start, end)
}

// EngineStats exposes the memoization counters
func (s *Session) EngineStats() (hits, misses uint64) {
	return s.engine.Stats()
}

func (s *Session) publishView() {
	view := s.View()
	batch := s.Batch()
	s.bus.Publish(TopicView, ViewEvent{
		BatchID:     batch.ID,
		GeneratedAt: batch.GeneratedAt,
		View:        view,
		Metrics:     pipeline.ComputeMetrics(view),
	})
}
