// Package simulate produces the synthetic latency data feeding the dashboard:
// periodic sample batches over the catalog topology and on-demand historical
// series for a selected connection.
package simulate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// LatencyModel selects how sample latencies are derived
type LatencyModel string

const (
	// ModelUniform draws latencies uniformly from [10, 210) ms
	ModelUniform LatencyModel = "uniform"
	// ModelDistance derives latencies from great-circle distance
	ModelDistance LatencyModel = "distance"
)

// ParseLatencyModel resolves a model token, defaulting to distance
func ParseLatencyModel(s string) LatencyModel {
	if LatencyModel(s) == ModelUniform {
		return ModelUniform
	}
	return ModelDistance
}

// Options tunes batch generation. The probabilities are presentation
// heuristics and deliberately configurable.
type Options struct {
	Model LatencyModel
	// ExchangeRegionProbability keeps an exchange-region pair in the batch.
	// With the distance model, same-provider pairs are always kept and the
	// probability only gates cross-provider pairs.
	ExchangeRegionProbability float64
	// CrossProviderProbability keeps a cross-provider region-region pair
	// (distance model only; same-provider pairs are always kept).
	CrossProviderProbability float64
}

// DefaultOptions returns the stock generation tuning
func DefaultOptions() Options {
	return Options{
		Model:                     ModelDistance,
		ExchangeRegionProbability: 0.30,
		CrossProviderProbability:  0.10,
	}
}

// Generator emits full sample batches over the catalog. It keeps no state
// between calls beyond its random source and id node: each batch replaces
// the previous one wholesale.
type Generator struct {
	catalog *catalog.Catalog
	opts    Options
	rnd     *rand.Rand
	node    *snowflake.Node
	est     *Estimator
	now     func() time.Time
}

// NewGenerator builds a generator seeded from the clock
func NewGenerator(c *catalog.Catalog, opts Options) (*Generator, error) {
	return newGenerator(c, opts, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newGenerator(c *catalog.Catalog, opts Options, rnd *rand.Rand, now func() time.Time) (*Generator, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "simulate: snowflake node")
	}
	if opts.Model == "" {
		opts.Model = ModelDistance
	}
	return &Generator{
		catalog: c,
		opts:    opts,
		rnd:     rnd,
		node:    node,
		est:     NewEstimator(rnd),
		now:     now,
	}, nil
}

// Generate produces a complete batch: every unordered exchange pair exactly
// once, a probabilistic subset of exchange-region pairs, and (distance model
// only) region-region pairs. All samples share one timestamp.
func (g *Generator) Generate() domain.Batch {
	exchanges := g.catalog.Exchanges()
	regions := g.catalog.Regions()
	ts := g.now().UnixMilli()

	samples := make([]domain.LatencySample, 0, len(exchanges)*len(exchanges)/2)

	// Exchange to exchange: complete graph, no duplicates, no self-pairs
	for i := 0; i < len(exchanges); i++ {
		for j := i + 1; j < len(exchanges); j++ {
			from, to := exchanges[i], exchanges[j]
			samples = append(samples, domain.LatencySample{
				ID:        pairID(from.ID, to.ID),
				FromID:    from.ID,
				ToID:      to.ID,
				LatencyMs: g.latency(from.Location, to.Location),
				Timestamp: ts,
				Kind:      domain.KindExchangeToExchange,
			})
		}
	}

	// Exchange to region: deliberately sparse subset
	for _, ex := range exchanges {
		for _, rg := range regions {
			keep := g.rnd.Float64() < g.opts.ExchangeRegionProbability
			if g.opts.Model == ModelDistance && ex.CloudProvider == rg.Provider {
				keep = true
			}
			if !keep {
				continue
			}
			samples = append(samples, domain.LatencySample{
				ID:        pairID(ex.ID, rg.ID),
				FromID:    ex.ID,
				ToID:      rg.ID,
				LatencyMs: g.latency(ex.Location, rg.Location),
				Timestamp: ts,
				Kind:      domain.KindExchangeToRegion,
			})
		}
	}

	// Region to region: distance model only, to avoid an implausibly dense
	// mesh in the uniform demo mode
	if g.opts.Model == ModelDistance {
		for i := 0; i < len(regions); i++ {
			for j := i + 1; j < len(regions); j++ {
				r1, r2 := regions[i], regions[j]
				if r1.Provider != r2.Provider && g.rnd.Float64() >= g.opts.CrossProviderProbability {
					continue
				}
				samples = append(samples, domain.LatencySample{
					ID:        pairID(r1.ID, r2.ID),
					FromID:    r1.ID,
					ToID:      r2.ID,
					LatencyMs: g.latency(r1.Location, r2.Location),
					Timestamp: ts,
					Kind:      domain.KindRegionToRegion,
				})
			}
		}
	}

	return domain.Batch{
		ID:          g.node.Generate().String(),
		GeneratedAt: ts,
		Samples:     samples,
	}
}

func (g *Generator) latency(from, to domain.Location) float64 {
	if g.opts.Model == ModelUniform {
		return uniformLatency(g.rnd)
	}
	return g.est.Latency(from, to)
}

func pairID(fromID, toID string) string {
	return fmt.Sprintf("%s-%s", fromID, toID)
}
