package export

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// GeoJSON renders the derived view as a FeatureCollection: one Point per
// visible entity and one LineString per visible connection. Coordinates
// follow the GeoJSON axis order, longitude first.
func GeoJSON(view domain.DerivedView) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	locations := make(map[string]domain.Location, len(view.Exchanges)+len(view.Regions))

	for _, e := range view.Exchanges {
		locations[e.ID] = e.Location
		f := geojson.NewPointFeature([]float64{e.Location.Lng, e.Location.Lat})
		f.SetProperty("id", e.ID)
		f.SetProperty("name", e.Name)
		f.SetProperty("kind", "exchange")
		f.SetProperty("provider", string(e.CloudProvider))
		f.SetProperty("city", e.Location.City)
		f.SetProperty("country", e.Location.Country)
		fc.AddFeature(f)
	}
	for _, r := range view.Regions {
		locations[r.ID] = r.Location
		f := geojson.NewPointFeature([]float64{r.Location.Lng, r.Location.Lat})
		f.SetProperty("id", r.ID)
		f.SetProperty("name", r.Name)
		f.SetProperty("kind", "region")
		f.SetProperty("provider", string(r.Provider))
		f.SetProperty("code", r.Code)
		fc.AddFeature(f)
	}

	for _, s := range view.Connections {
		from, okFrom := locations[s.FromID]
		to, okTo := locations[s.ToID]
		if !okFrom || !okTo {
			// The pipeline guarantees both endpoints are visible; an
			// unresolved id here would be a programming error upstream.
			continue
		}
		f := geojson.NewLineStringFeature([][]float64{
			{from.Lng, from.Lat},
			{to.Lng, to.Lat},
		})
		f.SetProperty("id", s.ID)
		f.SetProperty("latency", s.LatencyMs)
		f.SetProperty("type", string(s.Kind))
		f.SetProperty("quality", string(domain.ClassifyQuality(s.LatencyMs)))
		f.SetProperty("timestamp", s.Timestamp)
		fc.AddFeature(f)
	}

	out, err := fc.MarshalJSON()
	return out, errors.Wrap(err, "export: marshal geojson")
}
