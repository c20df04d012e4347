package catalog

import (
	"strings"
	"testing"

	"github.com/talkincode/latencyglobe/internal/domain"
)

func TestNewSeedCatalog(t *testing.T) {
	t.Parallel()

	c := New()
	exchanges, regions := c.Size()
	if exchanges != 26 {
		t.Errorf("exchange count = %d, want 26", exchanges)
	}
	if regions != 38 {
		t.Errorf("region count = %d, want 38", regions)
	}
	if len(c.ExchangeIDs()) != exchanges {
		t.Errorf("ExchangeIDs length = %d, want %d", len(c.ExchangeIDs()), exchanges)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c := New()

	e, found := c.Lookup("okx-sg")
	if !found {
		t.Fatal("expected okx-sg in catalog")
	}
	if e.EntityName() != "OKX Singapore" {
		t.Errorf("name = %q, want OKX Singapore", e.EntityName())
	}
	if e.EntityProvider() != domain.ProviderAWS {
		t.Errorf("provider = %v, want AWS", e.EntityProvider())
	}

	if _, found := c.Lookup("aws-ap-southeast-1"); !found {
		t.Error("expected aws-ap-southeast-1 in catalog")
	}
	if _, found := c.Lookup("nope"); found {
		t.Error("unexpected hit for unknown id")
	}
}

func TestNewFromValidation(t *testing.T) {
	t.Parallel()

	valid := domain.Exchange{
		ID: "x1", Name: "X1", CloudProvider: domain.ProviderAWS,
		Location: domain.Location{Lat: 0, Lng: 0, City: "c", Country: "cc"},
	}

	tests := []struct {
		name      string
		exchanges []domain.Exchange
		wantErr   string
	}{
		{
			name: "empty id",
			exchanges: []domain.Exchange{
				{Name: "X", CloudProvider: domain.ProviderAWS},
			},
			wantErr: "empty id",
		},
		{
			name: "latitude out of range",
			exchanges: []domain.Exchange{
				{ID: "x", CloudProvider: domain.ProviderAWS,
					Location: domain.Location{Lat: 91}},
			},
			wantErr: "latitude",
		},
		{
			name: "longitude out of range",
			exchanges: []domain.Exchange{
				{ID: "x", CloudProvider: domain.ProviderAWS,
					Location: domain.Location{Lng: -181}},
			},
			wantErr: "longitude",
		},
		{
			name: "unknown provider",
			exchanges: []domain.Exchange{
				{ID: "x", CloudProvider: domain.CloudProvider("IBM")},
			},
			wantErr: "unknown provider",
		},
		{
			name: "negative server count",
			exchanges: []domain.Exchange{
				{ID: "x", CloudProvider: domain.ProviderAWS, ServerCount: -1},
			},
			wantErr: "server count",
		},
		{
			name:      "duplicate ids",
			exchanges: []domain.Exchange{valid, valid},
			wantErr:   "duplicate",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewFrom(tt.exchanges, nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	c := New()
	got := c.Exchanges()
	got[0].ID = "mutated"

	again := c.Exchanges()
	if again[0].ID == "mutated" {
		t.Error("mutating the returned slice leaked into the catalog")
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	c := New()

	t.Run("dedupes repeated values", func(t *testing.T) {
		t.Parallel()
		// Three Singapore exchanges share one city, expect a single city entry
		got := c.Suggest("singapore", 20)
		cities := 0
		for _, s := range got {
			if s.Kind == domain.SuggestCity && s.Value == "Singapore" {
				cities++
			}
		}
		if cities != 1 {
			t.Errorf("city suggestion count = %d, want 1", cities)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()
		got := c.Suggest("a", 8)
		if len(got) > 8 {
			t.Errorf("suggestion count = %d, want <= 8", len(got))
		}
	})

	t.Run("provider matches", func(t *testing.T) {
		t.Parallel()
		got := c.Suggest("aws", 8)
		found := false
		for _, s := range got {
			if s.Kind == domain.SuggestProvider && s.Value == "AWS" {
				found = true
			}
		}
		if !found {
			t.Error("expected AWS provider suggestion")
		}
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		t.Parallel()
		if got := c.Suggest("  ", 8); got != nil {
			t.Errorf("expected nil for blank query, got %v", got)
		}
	})
}
