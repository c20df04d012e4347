package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/domain"
	"github.com/talkincode/latencyglobe/internal/session"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

func registerFilterRoutes() {
	webserver.ApiGET("/filters", getFilters)
	webserver.ApiPUT("/filters", putFilters)
	webserver.ApiPOST("/filters/select-all", postSelectAll)
	webserver.ApiPOST("/filters/clear-all", postClearAll)
	webserver.ApiPOST("/filters/exchanges/:id/toggle", postToggleExchange)
	webserver.ApiPOST("/filters/providers/:name/toggle", postToggleProvider)
}

// filterSummary echoes the control panel's summary box
type filterSummary struct {
	ActiveFilterCount int `json:"activeFilterCount"`
	SelectedExchanges int `json:"selectedExchanges"`
	TotalExchanges    int `json:"totalExchanges"`
	SelectedProviders int `json:"selectedProviders"`
	TotalProviders    int `json:"totalProviders"`
}

func getFilters(c echo.Context) error {
	filter, version := GetSession(c).Filter()
	totalExchanges, _ := GetCatalog(c).Size()
	return ok(c, map[string]interface{}{
		"filter":  filter,
		"version": version,
		"summary": summarize(filter, totalExchanges),
	})
}

// putFilters merges a partial filter update; absent fields keep their value
func putFilters(c echo.Context) error {
	var patch session.FilterPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse filter patch", nil)
	}
	if patch.CloudProviders != nil {
		for _, p := range *patch.CloudProviders {
			if _, valid := domain.ParseProvider(string(p)); !valid {
				return fail(c, http.StatusBadRequest, "INVALID_PROVIDER",
					"Unknown cloud provider", map[string]interface{}{"provider": p})
			}
		}
	}
	filter := GetSession(c).SetFilter(patch)
	return ok(c, filter)
}

func postSelectAll(c echo.Context) error {
	return ok(c, GetSession(c).SelectAll())
}

func postClearAll(c echo.Context) error {
	return ok(c, GetSession(c).ClearAll())
}

func postToggleExchange(c echo.Context) error {
	id := c.Param("id")
	if _, found := GetCatalog(c).Lookup(id); !found {
		return fail(c, http.StatusNotFound, "EXCHANGE_NOT_FOUND", "Unknown exchange id", nil)
	}
	selected := GetSession(c).ToggleExchange(id)
	return ok(c, map[string]interface{}{"id": id, "selected": selected})
}

func postToggleProvider(c echo.Context) error {
	p, valid := domain.ParseProvider(c.Param("name"))
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_PROVIDER", "Unknown cloud provider", nil)
	}
	selected := GetSession(c).ToggleProvider(p)
	return ok(c, map[string]interface{}{"provider": p, "selected": selected})
}

func summarize(f domain.FilterState, totalExchanges int) filterSummary {
	s := filterSummary{
		SelectedExchanges: len(f.Exchanges),
		TotalExchanges:    totalExchanges,
		SelectedProviders: len(f.CloudProviders),
		TotalProviders:    len(domain.AllProviders()),
	}
	if len(f.Exchanges) < totalExchanges {
		s.ActiveFilterCount++
	}
	if len(f.CloudProviders) < len(domain.AllProviders()) {
		s.ActiveFilterCount++
	}
	if f.LatencyRange != domain.DefaultLatencyRange() {
		s.ActiveFilterCount++
	}
	if !f.ShowRealtime || !f.ShowHistorical || !f.ShowRegions {
		s.ActiveFilterCount++
	}
	return s
}
