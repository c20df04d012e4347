package api

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/domain"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

type connectionPayload struct {
	domain.LatencySample
	Quality domain.NetworkQuality `json:"quality"`
}

func registerTopologyRoutes() {
	webserver.ApiGET("/topology", getTopology)
	webserver.ApiGET("/metrics", getMetrics)
	webserver.ApiPOST("/refresh", postRefresh)
}

// getTopology returns the current derived view. Connections carry the
// network quality grade alongside the raw latency.
func getTopology(c echo.Context) error {
	sess := GetSession(c)
	view := sess.View()
	batch := sess.Batch()

	conns := make([]connectionPayload, 0, len(view.Connections))
	for _, s := range view.Connections {
		conns = append(conns, connectionPayload{
			LatencySample: s,
			Quality:       domain.ClassifyQuality(s.LatencyMs),
		})
	}

	return ok(c, map[string]interface{}{
		"batchId":     batch.ID,
		"generatedAt": batch.GeneratedAt,
		"exchanges":   view.Exchanges,
		"regions":     view.Regions,
		"connections": conns,
	})
}

func getMetrics(c echo.Context) error {
	return ok(c, GetSession(c).Metrics())
}

func postRefresh(c echo.Context) error {
	sess := GetSession(c)
	sess.Refresh()
	batch := sess.Batch()
	return ok(c, map[string]interface{}{
		"batchId":     batch.ID,
		"generatedAt": batch.GeneratedAt,
		"samples":     len(batch.Samples),
	})
}
