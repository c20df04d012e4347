package simulate

import (
	"math"
	"math/rand"

	"github.com/talkincode/latencyglobe/internal/domain"
)

const (
	earthRadiusKm = 6371

	// Propagation speed of light in fiber vs free space, km/s
	fiberSpeedKmps = 200000
	radioSpeedKmps = 300000
)

// LinkType selects the propagation medium for the distance model
type LinkType string

const (
	LinkFiber LinkType = "fiber"
	LinkRadio LinkType = "radio"
)

// Distance returns the great-circle distance between two locations in km
// using the haversine formula.
func Distance(a, b domain.Location) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Estimator produces distance-based latency estimates with randomized
// overhead terms.
type Estimator struct {
	rnd *rand.Rand
}

// NewEstimator builds an estimator on the given random source
func NewEstimator(rnd *rand.Rand) *Estimator {
	return &Estimator{rnd: rnd}
}

// Latency estimates the round latency in ms between two locations over
// fiber: propagation delay plus network (5-25ms), routing (2-12ms) and
// processing (1-6ms) overheads, rounded to the nearest millisecond.
// The result is always positive.
func (e *Estimator) Latency(from, to domain.Location) float64 {
	return e.LatencyOver(from, to, LinkFiber)
}

// LatencyOver estimates latency over an explicit link type
func (e *Estimator) LatencyOver(from, to domain.Location, link LinkType) float64 {
	speed := float64(fiberSpeedKmps)
	if link != LinkFiber {
		speed = radioSpeedKmps
	}
	base := Distance(from, to) / speed * 1000

	networkOverhead := e.rnd.Float64()*20 + 5
	routingDelay := e.rnd.Float64()*10 + 2
	processingDelay := e.rnd.Float64()*5 + 1

	v := math.Round(base + networkOverhead + routingDelay + processingDelay)
	if v < 1 {
		v = 1
	}
	return v
}

// uniformLatency is the geography-independent model: uniform in [10, 210) ms
func uniformLatency(rnd *rand.Rand) float64 {
	return rnd.Float64()*200 + 10
}
