package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/domain"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

func registerHistoryRoutes() {
	webserver.ApiGET("/history/:from/:to", getHistory)
	webserver.ApiGET("/connections/:id/recent", getRecent)
}

// getHistory returns a synthetic historical series for one connection pair.
// The series is regenerated wholesale on every call; callers replace their
// previous series rather than appending.
func getHistory(c echo.Context) error {
	fromID := c.Param("from")
	toID := c.Param("to")

	window, valid := domain.ParseTimeRange(c.QueryParam("range"))
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE",
			"Unknown time range, expected one of 1h, 24h, 7d, 30d", nil)
	}

	at := time.Now()
	if raw := c.QueryParam("at"); raw != "" {
		parsed, err := dateparse.ParseAny(raw)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_TIMESTAMP",
				"Unable to parse 'at' timestamp", err.Error())
		}
		at = parsed
	}

	cat := GetCatalog(c)
	_, fromOK := cat.Lookup(fromID)
	_, toOK := cat.Lookup(toID)
	if !fromOK && !toOK {
		// No resolvable pair at all: recoverable, the client keeps its
		// previous series and may retry with a valid selection.
		return fail(c, http.StatusNotFound, "PAIR_NOT_FOUND",
			"Neither endpoint resolves to a known entity",
			map[string]interface{}{"retryable": true})
	}

	points := GetSession(c).History(fromID, toID, window, at)
	if len(points) == 0 {
		// Series generation is total under valid inputs; an empty result
		// is a scoped failure, the client keeps its previous series.
		return fail(c, http.StatusInternalServerError, "GENERATION_FAILED",
			"Historical series generation produced no points",
			map[string]interface{}{"retryable": true})
	}

	return ok(c, map[string]interface{}{
		"fromId": fromID,
		"toId":   toID,
		"range":  window,
		"points": points,
	})
}

// getRecent returns the recorded series for one connection id from the
// in-memory time-series store.
func getRecent(c echo.Context) error {
	connID := c.Param("id")

	end := time.Now().UnixMilli()
	start := end - time.Hour.Milliseconds()
	if raw := c.QueryParam("start"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_TIMESTAMP", "Unable to parse 'start' millis", nil)
		}
		start = v
	}
	if raw := c.QueryParam("end"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_TIMESTAMP", "Unable to parse 'end' millis", nil)
		}
		end = v
	}

	points, err := GetSession(c).Recent(connID, start, end)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR",
			"Failed to read recorded series", err.Error())
	}

	return ok(c, map[string]interface{}{
		"connectionId": connID,
		"start":        start,
		"end":          end,
		"points":       points,
	})
}
