package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

const maxSuggestions = 8

type searchPayload struct {
	Query string `json:"query"`
}

func registerSearchRoutes() {
	webserver.ApiPUT("/search", putSearch)
	webserver.ApiGET("/search/suggest", getSuggestions)
}

// putSearch schedules a debounced query commit. The response acknowledges
// the pending query; the committed view arrives on the stream after the
// quiet period.
func putSearch(c echo.Context) error {
	var payload searchPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse search payload", nil)
	}
	GetSession(c).Search(payload.Query)
	return ok(c, map[string]interface{}{"pending": payload.Query})
}

func getSuggestions(c echo.Context) error {
	q := c.QueryParam("q")
	suggestions := GetCatalog(c).Suggest(q, maxSuggestions)
	return ok(c, map[string]interface{}{
		"query":       q,
		"suggestions": suggestions,
	})
}
