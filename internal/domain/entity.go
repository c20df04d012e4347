package domain

import "strings"

// Topology entity models. Entities are immutable seed data loaded once at
// startup and referenced everywhere by their string id.

// CloudProvider is a hosting provider code
type CloudProvider string

const (
	ProviderAWS   CloudProvider = "AWS"
	ProviderGCP   CloudProvider = "GCP"
	ProviderAzure CloudProvider = "Azure"
)

// AllProviders returns every supported provider code
func AllProviders() []CloudProvider {
	return []CloudProvider{ProviderAWS, ProviderGCP, ProviderAzure}
}

// ParseProvider resolves a provider code case-insensitively
func ParseProvider(s string) (CloudProvider, bool) {
	for _, p := range AllProviders() {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Location is a geocoordinate plus display labels
type Location struct {
	Lat     float64 `json:"lat"`     // Latitude in [-90, 90]
	Lng     float64 `json:"lng"`     // Longitude in [-180, 180]
	City    string  `json:"city"`    // City name
	Country string  `json:"country"` // Country name
}

// Exchange is a cryptocurrency exchange deployment site
type Exchange struct {
	ID            string        `json:"id"`            // Stable unique id, join key
	Name          string        `json:"name"`          // Display name
	Location      Location      `json:"location"`      // Site geocoordinate
	CloudProvider CloudProvider `json:"cloudProvider"` // Hosting provider
	Region        string        `json:"region"`        // Provider region code
	ServerCount   int           `json:"serverCount"`   // Deployed server count
}

// CloudRegion is a cloud provider region site
type CloudRegion struct {
	ID          string        `json:"id"`          // Stable unique id, join key
	Provider    CloudProvider `json:"provider"`    // Owning provider
	Name        string        `json:"name"`        // Display name
	Code        string        `json:"code"`        // Provider region code
	Location    Location      `json:"location"`    // Region geocoordinate
	ServerCount int           `json:"serverCount"` // Deployed server count
}

// Entity is the common surface of Exchange and CloudRegion
type Entity interface {
	EntityID() string
	EntityName() string
	EntityLocation() Location
	EntityProvider() CloudProvider
}

func (e Exchange) EntityID() string              { return e.ID }
func (e Exchange) EntityName() string            { return e.Name }
func (e Exchange) EntityLocation() Location      { return e.Location }
func (e Exchange) EntityProvider() CloudProvider { return e.CloudProvider }

func (r CloudRegion) EntityID() string              { return r.ID }
func (r CloudRegion) EntityName() string            { return r.Name }
func (r CloudRegion) EntityLocation() Location      { return r.Location }
func (r CloudRegion) EntityProvider() CloudProvider { return r.Provider }
