package simulate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/talkincode/latencyglobe/internal/domain"
)

func TestSeriesShape(t *testing.T) {
	t.Parallel()

	c := testCatalog(t,
		[]domain.Exchange{exchangeN("x1", domain.ProviderAWS), exchangeN("x2", domain.ProviderGCP)},
		nil)
	gen := newHistoryGenerator(c, 100, rand.New(rand.NewSource(1)))
	now := time.UnixMilli(1700000000000)

	for _, window := range []domain.TimeRange{
		domain.TimeRange1h, domain.TimeRange24h, domain.TimeRange7d, domain.TimeRange30d,
	} {
		window := window
		t.Run(string(window), func(t *testing.T) {
			t.Parallel()
			series := gen.Series("x1", "x2", window, now)

			if len(series) != 100 {
				t.Fatalf("point count = %d, want 100", len(series))
			}
			if last := series[len(series)-1].Timestamp; last != now.UnixMilli() {
				t.Errorf("newest timestamp = %d, want %d", last, now.UnixMilli())
			}
			for i := 1; i < len(series); i++ {
				if series[i].Timestamp <= series[i-1].Timestamp {
					t.Fatalf("timestamps not strictly increasing at %d: %d then %d",
						i, series[i-1].Timestamp, series[i].Timestamp)
				}
			}
			for _, p := range series {
				if p.LatencyMs < 1 {
					t.Fatalf("latency %v at %d, want >= 1", p.LatencyMs, p.Timestamp)
				}
			}
		})
	}
}

func TestSeriesEvenSpacing(t *testing.T) {
	t.Parallel()

	c := testCatalog(t,
		[]domain.Exchange{exchangeN("x1", domain.ProviderAWS), exchangeN("x2", domain.ProviderGCP)},
		nil)
	gen := newHistoryGenerator(c, 100, rand.New(rand.NewSource(2)))
	now := time.UnixMilli(1700000000000)

	series := gen.Series("x1", "x2", domain.TimeRange24h, now)
	step := series[1].Timestamp - series[0].Timestamp
	for i := 2; i < len(series); i++ {
		if got := series[i].Timestamp - series[i-1].Timestamp; got != step {
			t.Fatalf("uneven spacing at %d: %d, want %d", i, got, step)
		}
	}

	wantStep := int64(24) * 3600 * 1000 / 100
	if step != wantStep {
		t.Errorf("step = %d ms, want %d", step, wantStep)
	}
}

func TestSeriesRegeneratedWholesale(t *testing.T) {
	t.Parallel()

	c := testCatalog(t,
		[]domain.Exchange{exchangeN("x1", domain.ProviderAWS), exchangeN("x2", domain.ProviderGCP)},
		nil)
	gen := newHistoryGenerator(c, 50, rand.New(rand.NewSource(3)))
	now := time.UnixMilli(1700000000000)

	a := gen.Series("x1", "x2", domain.TimeRange1h, now)
	b := gen.Series("x1", "x2", domain.TimeRange7d, now)

	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("point counts = %d/%d, want 50/50", len(a), len(b))
	}
	if a[0].Timestamp == b[0].Timestamp {
		t.Error("window change should move the oldest timestamp")
	}
}

func TestSeriesUnresolvableEndpointsFallBack(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, []domain.Exchange{exchangeN("x1", domain.ProviderAWS)}, nil)
	gen := newHistoryGenerator(c, 100, rand.New(rand.NewSource(4)))

	series := gen.Series("ghost-a", "ghost-b", domain.TimeRange24h, time.UnixMilli(1700000000000))
	if len(series) != 100 {
		t.Fatalf("point count = %d, want 100", len(series))
	}
	for _, p := range series {
		if p.LatencyMs < 1 {
			t.Fatalf("fallback latency %v, want >= 1", p.LatencyMs)
		}
	}
}

func TestHistoryGeneratorDefaultsPoints(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, []domain.Exchange{exchangeN("x1", domain.ProviderAWS)}, nil)
	gen := newHistoryGenerator(c, 0, rand.New(rand.NewSource(5)))

	series := gen.Series("x1", "x1", domain.TimeRange24h, time.Now())
	if len(series) != 100 {
		t.Errorf("point count = %d, want default 100", len(series))
	}
}
