package session

import (
	"time"

	"github.com/nakabonne/tstorage"
	"github.com/pkg/errors"
	"github.com/talkincode/latencyglobe/internal/domain"
)

const recorderMetric = "connection_latency"

// Recorder keeps every generated sample in an in-memory time-series store,
// one series per connection id. It backs the export path's time-window split
// and the recent-series API; nothing is persisted across sessions.
type Recorder struct {
	storage tstorage.Storage
}

// NewRecorder opens an in-memory store with the given retention
func NewRecorder(retention time.Duration) (*Recorder, error) {
	storage, err := tstorage.NewStorage(
		tstorage.WithTimestampPrecision(tstorage.Milliseconds),
		tstorage.WithRetention(retention),
	)
	if err != nil {
		return nil, errors.Wrap(err, "session: open recorder storage")
	}
	return &Recorder{storage: storage}, nil
}

// Record appends every sample of a batch
func (r *Recorder) Record(batch domain.Batch) error {
	rows := make([]tstorage.Row, 0, len(batch.Samples))
	for _, s := range batch.Samples {
		rows = append(rows, tstorage.Row{
			Metric: recorderMetric,
			Labels: []tstorage.Label{{Name: "conn", Value: s.ID}},
			DataPoint: tstorage.DataPoint{
				Timestamp: s.Timestamp,
				Value:     s.LatencyMs,
			},
		})
	}
	return errors.Wrap(r.storage.InsertRows(rows), "session: record batch")
}

// Recent returns the recorded series for one connection id between start and
// end (epoch millis). A connection with no recorded points yields an empty
// series, not an error.
func (r *Recorder) Recent(connID string, start, end int64) ([]domain.HistoricalPoint, error) {
	points, err := r.storage.Select(recorderMetric,
		[]tstorage.Label{{Name: "conn", Value: connID}}, start, end)
	if errors.Is(err, tstorage.ErrNoDataPoints) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "session: select recorded series")
	}
	out := make([]domain.HistoricalPoint, 0, len(points))
	for _, p := range points {
		out = append(out, domain.HistoricalPoint{Timestamp: p.Timestamp, LatencyMs: p.Value})
	}
	return out, nil
}

// Close flushes and releases the store
func (r *Recorder) Close() error {
	return r.storage.Close()
}
