package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/domain"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

func registerCatalogRoutes() {
	webserver.ApiGET("/catalog/exchanges", listExchanges)
	webserver.ApiGET("/catalog/regions", listRegions)
}

// listExchanges returns the seed exchange catalog, paged, with optional
// substring filter on name/city/country.
func listExchanges(c echo.Context) error {
	page, pageSize := webserver.ParsePagination(c)
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))

	all := GetCatalog(c).Exchanges()
	matched := make([]domain.Exchange, 0, len(all))
	for _, e := range all {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Location.City), q) ||
			strings.Contains(strings.ToLower(e.Location.Country), q) {
			matched = append(matched, e)
		}
	}

	start, end := pageBounds(len(matched), page, pageSize)
	return paged(c, matched[start:end], len(matched), page, pageSize)
}

func listRegions(c echo.Context) error {
	page, pageSize := webserver.ParsePagination(c)
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))
	provider := strings.TrimSpace(c.QueryParam("provider"))

	all := GetCatalog(c).Regions()
	matched := make([]domain.CloudRegion, 0, len(all))
	for _, r := range all {
		if provider != "" {
			if p, valid := domain.ParseProvider(provider); !valid || r.Provider != p {
				continue
			}
		}
		if q == "" ||
			strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Location.City), q) ||
			strings.Contains(strings.ToLower(r.Location.Country), q) {
			matched = append(matched, r)
		}
	}

	start, end := pageBounds(len(matched), page, pageSize)
	return paged(c, matched[start:end], len(matched), page, pageSize)
}

func pageBounds(total, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
