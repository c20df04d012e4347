// Package api exposes the dashboard over HTTP: topology and metrics reads,
// filter and search mutations, history and recorded series, exports and the
// websocket stream. Handlers resolve their dependencies from the request
// context injected by ContextMiddleware.
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/session"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

const (
	ctxSessionKey = "latencyglobe.session"
	ctxCatalogKey = "latencyglobe.catalog"
)

// ContextMiddleware injects the session and catalog into every request
func ContextMiddleware(s *session.Session, c *catalog.Catalog) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			ec.Set(ctxSessionKey, s)
			ec.Set(ctxCatalogKey, c)
			return next(ec)
		}
	}
}

// GetSession resolves the session from the request context
func GetSession(c echo.Context) *session.Session {
	return c.Get(ctxSessionKey).(*session.Session)
}

// GetCatalog resolves the catalog from the request context
func GetCatalog(c echo.Context) *catalog.Catalog {
	return c.Get(ctxCatalogKey).(*catalog.Catalog)
}

// RegisterRoutes mounts every API route on the webserver registry. Called
// once during application init, before the engine is built.
func RegisterRoutes() {
	registerTopologyRoutes()
	registerCatalogRoutes()
	registerHistoryRoutes()
	registerFilterRoutes()
	registerSearchRoutes()
	registerExportRoutes()
	registerStreamRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return webserver.OK(c, data)
}

func fail(c echo.Context, status int, errCode, message string, detail interface{}) error {
	return webserver.Fail(c, status, errCode, message, detail)
}

func paged(c echo.Context, data interface{}, total, page, pageSize int) error {
	return webserver.Paged(c, data, total, page, pageSize)
}
