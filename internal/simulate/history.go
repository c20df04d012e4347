package simulate

import (
	"math"
	"math/rand"
	"time"

	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// Diurnal congestion multipliers by local hour of day
const (
	businessHoursFactor = 1.20 // hours [9, 17]
	eveningFactor       = 1.15 // hours [19, 23]
)

// HistoryGenerator produces synthetic historical series for one connection.
// Each request regenerates the full series; nothing is appended or merged.
type HistoryGenerator struct {
	catalog *catalog.Catalog
	rnd     *rand.Rand
	est     *Estimator
	points  int
}

// NewHistoryGenerator builds a history generator emitting the given number
// of points per series (100 when points <= 0).
func NewHistoryGenerator(c *catalog.Catalog, points int) *HistoryGenerator {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newHistoryGenerator(c, points, rnd)
}

func newHistoryGenerator(c *catalog.Catalog, points int, rnd *rand.Rand) *HistoryGenerator {
	if points <= 0 {
		points = 100
	}
	return &HistoryGenerator{
		catalog: c,
		rnd:     rnd,
		est:     NewEstimator(rnd),
		points:  points,
	}
}

// Series generates the series for a window ending at now: evenly spaced
// points with the most recent at now. Unresolvable endpoints fall back to a
// uniform random baseline so a chart can always render.
func (h *HistoryGenerator) Series(fromID, toID string, window domain.TimeRange, now time.Time) []domain.HistoricalPoint {
	hours := window.Hours()
	if hours <= 0 {
		hours = domain.TimeRange24h.Hours()
	}

	base := h.baseLatency(fromID, toID)
	nowMs := now.UnixMilli()
	interval := int64(hours) * 3600 * 1000 / int64(h.points)

	series := make([]domain.HistoricalPoint, 0, h.points)
	for i := 0; i < h.points; i++ {
		ts := nowMs - int64(h.points-1-i)*interval
		hour := time.UnixMilli(ts).Hour()

		factor := 1.0
		switch {
		case hour >= 9 && hour <= 17:
			factor = businessHoursFactor
		case hour >= 19 && hour <= 23:
			factor = eveningFactor
		}

		variation := (h.rnd.Float64() - 0.5) * 0.3 // +/-15%
		v := math.Round(base * factor * (1 + variation))
		if v < 1 {
			v = 1
		}
		series = append(series, domain.HistoricalPoint{Timestamp: ts, LatencyMs: v})
	}
	return series
}

func (h *HistoryGenerator) baseLatency(fromID, toID string) float64 {
	from, okFrom := h.catalog.Lookup(fromID)
	to, okTo := h.catalog.Lookup(toID)
	if !okFrom || !okTo {
		return h.rnd.Float64()*100 + 20
	}
	return h.est.Latency(from.EntityLocation(), to.EntityLocation())
}
