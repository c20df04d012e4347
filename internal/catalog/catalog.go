// Package catalog holds the immutable seed topology: exchanges and cloud
// regions with their geocoordinates. The catalog is loaded once at startup
// and never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// Catalog indexes the seed entities by id
type Catalog struct {
	exchanges []domain.Exchange
	regions   []domain.CloudRegion
	index     map[string]domain.Entity
}

// New builds the catalog from the built-in seed data. The seed is validated
// at startup; a broken seed is a programmer error and panics.
func New() *Catalog {
	c, err := NewFrom(seedExchanges, seedRegions)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFrom builds a catalog from caller-provided entities
func NewFrom(exchanges []domain.Exchange, regions []domain.CloudRegion) (*Catalog, error) {
	c := &Catalog{
		exchanges: append([]domain.Exchange(nil), exchanges...),
		regions:   append([]domain.CloudRegion(nil), regions...),
		index:     make(map[string]domain.Entity, len(exchanges)+len(regions)),
	}
	for _, e := range c.exchanges {
		if err := validateEntity(e); err != nil {
			return nil, err
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, errors.Errorf("catalog: duplicate entity id %q", e.ID)
		}
		c.index[e.ID] = e
	}
	for _, r := range c.regions {
		if err := validateEntity(r); err != nil {
			return nil, err
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, errors.Errorf("catalog: duplicate entity id %q", r.ID)
		}
		c.index[r.ID] = r
	}
	return c, nil
}

func validateEntity(e domain.Entity) error {
	if e.EntityID() == "" {
		return errors.New("catalog: entity with empty id")
	}
	loc := e.EntityLocation()
	if loc.Lat < -90 || loc.Lat > 90 {
		return errors.Errorf("catalog: entity %q latitude %v out of range", e.EntityID(), loc.Lat)
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return errors.Errorf("catalog: entity %q longitude %v out of range", e.EntityID(), loc.Lng)
	}
	if _, ok := domain.ParseProvider(string(e.EntityProvider())); !ok {
		return errors.Errorf("catalog: entity %q has unknown provider %q", e.EntityID(), e.EntityProvider())
	}
	switch v := e.(type) {
	case domain.Exchange:
		if v.ServerCount < 0 {
			return errors.Errorf("catalog: exchange %q negative server count", v.ID)
		}
	case domain.CloudRegion:
		if v.ServerCount < 0 {
			return errors.Errorf("catalog: region %q negative server count", v.ID)
		}
	}
	return nil
}

// Lookup resolves an entity id
func (c *Catalog) Lookup(id string) (domain.Entity, bool) {
	e, ok := c.index[id]
	return e, ok
}

// Exchanges returns a copy of the exchange list
func (c *Catalog) Exchanges() []domain.Exchange {
	return append([]domain.Exchange(nil), c.exchanges...)
}

// Regions returns a copy of the cloud region list
func (c *Catalog) Regions() []domain.CloudRegion {
	return append([]domain.CloudRegion(nil), c.regions...)
}

// ExchangeIDs returns every exchange id in seed order
func (c *Catalog) ExchangeIDs() []string {
	ids := make([]string, 0, len(c.exchanges))
	for _, e := range c.exchanges {
		ids = append(ids, e.ID)
	}
	return ids
}

// Size returns (exchange count, region count)
func (c *Catalog) Size() (int, int) {
	return len(c.exchanges), len(c.regions)
}

// Suggest returns up to limit deduplicated search completions for a query,
// drawn from exchange names, cities, countries, providers and region names.
func (c *Catalog) Suggest(query string, limit int) []domain.Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var out []domain.Suggestion
	seen := make(map[string]bool)
	add := func(kind domain.SuggestionKind, value, label string) {
		key := string(kind) + "\x00" + value
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, domain.Suggestion{Kind: kind, Value: value, Label: label})
	}

	for _, e := range c.exchanges {
		if strings.Contains(strings.ToLower(e.Name), q) {
			add(domain.SuggestExchange, e.Name, fmt.Sprintf("%s (Exchange)", e.Name))
		}
		if strings.Contains(strings.ToLower(e.Location.City), q) {
			add(domain.SuggestCity, e.Location.City, fmt.Sprintf("%s (City)", e.Location.City))
		}
		if strings.Contains(strings.ToLower(e.Location.Country), q) {
			add(domain.SuggestCountry, e.Location.Country, fmt.Sprintf("%s (Country)", e.Location.Country))
		}
	}
	for _, p := range domain.AllProviders() {
		if strings.Contains(strings.ToLower(string(p)), q) {
			add(domain.SuggestProvider, string(p), fmt.Sprintf("%s (Cloud Provider)", p))
		}
	}
	for _, r := range c.regions {
		if strings.Contains(strings.ToLower(r.Name), q) {
			add(domain.SuggestRegion, r.Name, fmt.Sprintf("%s (Region)", r.Name))
		}
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
