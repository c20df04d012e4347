package domain

import (
	"reflect"
	"testing"
)

func TestLatencyRangeContains(t *testing.T) {
	t.Parallel()

	r := LatencyRange{Min: 10, Max: 100}

	tests := []struct {
		name string
		v    float64
		want bool
	}{
		{"below min", 9, false},
		{"exactly min", 10, true},
		{"inside", 55, true},
		{"exactly max", 100, true},
		{"above max", 101, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestLatencyRangeInverted(t *testing.T) {
	t.Parallel()

	// Min > Max is passed through, every value fails the band test
	r := LatencyRange{Min: 100, Max: 10}
	for _, v := range []float64{5, 10, 50, 100, 200} {
		if r.Contains(v) {
			t.Errorf("inverted range should contain nothing, got Contains(%v) = true", v)
		}
	}
}

func TestDefaultFilterStateSelectsEverything(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "b", "c"}
	f := DefaultFilterState(ids)

	if !reflect.DeepEqual(f.Exchanges, ids) {
		t.Errorf("Exchanges = %v, want %v", f.Exchanges, ids)
	}
	if !reflect.DeepEqual(f.CloudProviders, AllProviders()) {
		t.Errorf("CloudProviders = %v, want %v", f.CloudProviders, AllProviders())
	}
	if !f.ShowRealtime || !f.ShowHistorical || !f.ShowRegions {
		t.Error("default state should enable every view category")
	}
	if f.LatencyRange != DefaultLatencyRange() {
		t.Errorf("LatencyRange = %v, want %v", f.LatencyRange, DefaultLatencyRange())
	}
}

func TestFilterStateClone(t *testing.T) {
	t.Parallel()

	orig := DefaultFilterState([]string{"a", "b"})
	clone := orig.Clone()

	clone.Exchanges[0] = "mutated"
	clone.CloudProviders[0] = CloudProvider("mutated")

	if orig.Exchanges[0] != "a" {
		t.Error("mutating clone exchanges leaked into the original")
	}
	if orig.CloudProviders[0] != ProviderAWS {
		t.Error("mutating clone providers leaked into the original")
	}
}

func TestParseProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  CloudProvider
		valid bool
	}{
		{"AWS", ProviderAWS, true},
		{"aws", ProviderAWS, true},
		{"Gcp", ProviderGCP, true},
		{"AZURE", ProviderAzure, true},
		{"ibm", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, valid := ParseProvider(tt.in)
		if got != tt.want || valid != tt.valid {
			t.Errorf("ParseProvider(%q) = (%v, %v), want (%v, %v)", tt.in, got, valid, tt.want, tt.valid)
		}
	}
}

func TestParseTimeRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  TimeRange
		valid bool
	}{
		{"", TimeRange24h, true},
		{"1h", TimeRange1h, true},
		{"24h", TimeRange24h, true},
		{"7d", TimeRange7d, true},
		{"30d", TimeRange30d, true},
		{"90d", TimeRange("90d"), false},
		{"bogus", TimeRange("bogus"), false},
	}

	for _, tt := range tests {
		got, valid := ParseTimeRange(tt.in)
		if valid != tt.valid {
			t.Errorf("ParseTimeRange(%q) valid = %v, want %v", tt.in, valid, tt.valid)
		}
		if valid && got != tt.want {
			t.Errorf("ParseTimeRange(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTimeRangeHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   TimeRange
		want int
	}{
		{TimeRange1h, 1},
		{TimeRange24h, 24},
		{TimeRange7d, 168},
		{TimeRange30d, 720},
		{TimeRange("x"), 0},
	}

	for _, tt := range tests {
		if got := tt.in.Hours(); got != tt.want {
			t.Errorf("%v.Hours() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClassifyQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		latency float64
		want    NetworkQuality
	}{
		{1, QualityExcellent},
		{19.9, QualityExcellent},
		{20, QualityGood},
		{49.9, QualityGood},
		{50, QualityFair},
		{99.9, QualityFair},
		{100, QualityPoor},
		{199.9, QualityPoor},
		{200, QualityCritical},
		{500, QualityCritical},
	}

	for _, tt := range tests {
		if got := ClassifyQuality(tt.latency); got != tt.want {
			t.Errorf("ClassifyQuality(%v) = %v, want %v", tt.latency, got, tt.want)
		}
	}
}
