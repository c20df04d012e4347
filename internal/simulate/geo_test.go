package simulate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/talkincode/latencyglobe/internal/domain"
)

var (
	london    = domain.Location{Lat: 51.5074, Lng: -0.1278}
	newYork   = domain.Location{Lat: 40.7128, Lng: -74.006}
	singapore = domain.Location{Lat: 1.3521, Lng: 103.8198}
)

func TestDistance(t *testing.T) {
	t.Parallel()

	t.Run("zero for identical points", func(t *testing.T) {
		t.Parallel()
		if d := Distance(london, london); d != 0 {
			t.Errorf("Distance(p, p) = %v, want 0", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		ab := Distance(london, newYork)
		ba := Distance(newYork, london)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
		}
	})

	t.Run("london to new york", func(t *testing.T) {
		t.Parallel()
		// Great-circle distance is roughly 5570 km
		d := Distance(london, newYork)
		if d < 5500 || d > 5650 {
			t.Errorf("Distance = %v km, want about 5570", d)
		}
	})
}

func TestEstimatorLatency(t *testing.T) {
	t.Parallel()

	est := NewEstimator(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		v := est.Latency(london, singapore)
		if v < 1 {
			t.Fatalf("latency = %v, want >= 1", v)
		}
		if v != math.Round(v) {
			t.Fatalf("latency = %v, want whole milliseconds", v)
		}
	}
}

func TestEstimatorLatencyIdenticalPoints(t *testing.T) {
	t.Parallel()

	// Zero distance still carries the overhead terms, minimum 8ms in total
	est := NewEstimator(rand.New(rand.NewSource(2)))
	for i := 0; i < 50; i++ {
		v := est.Latency(london, london)
		if v < 8 {
			t.Fatalf("latency = %v, want >= 8 (overhead floor)", v)
		}
	}
}

func TestLatencyOverLinkTypes(t *testing.T) {
	t.Parallel()

	// Radio propagation is faster than fiber, so averaged over many draws
	// the radio estimate for a long path must come out lower.
	fiberEst := NewEstimator(rand.New(rand.NewSource(3)))
	radioEst := NewEstimator(rand.New(rand.NewSource(3)))

	var fiberSum, radioSum float64
	for i := 0; i < 200; i++ {
		fiberSum += fiberEst.LatencyOver(london, singapore, LinkFiber)
		radioSum += radioEst.LatencyOver(london, singapore, LinkRadio)
	}
	if radioSum >= fiberSum {
		t.Errorf("radio total %v should be below fiber total %v", radioSum, fiberSum)
	}
}

func TestUniformLatencyRange(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		v := uniformLatency(rnd)
		if v < 10 || v >= 210 {
			t.Fatalf("uniform latency = %v, want in [10, 210)", v)
		}
	}
}
