// Package webserver owns the HTTP engine: an echo instance with a uniform
// JSON envelope, a route registry that lets feature packages register
// handlers at init time, and request logging through zap.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cast"
	"github.com/talkincode/latencyglobe/config"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

var registry []route

// ApiGET registers a GET route under /api
func ApiGET(path string, h echo.HandlerFunc) {
	registry = append(registry, route{http.MethodGet, path, h})
}

// ApiPOST registers a POST route under /api
func ApiPOST(path string, h echo.HandlerFunc) {
	registry = append(registry, route{http.MethodPost, path, h})
}

// ApiPUT registers a PUT route under /api
func ApiPUT(path string, h echo.HandlerFunc) {
	registry = append(registry, route{http.MethodPut, path, h})
}

// ApiDELETE registers a DELETE route under /api
func ApiDELETE(path string, h echo.HandlerFunc) {
	registry = append(registry, route{http.MethodDelete, path, h})
}

// WebServer wraps the echo engine and its lifecycle
type WebServer struct {
	root *echo.Echo
	cfg  config.WebConfig
}

// Init builds the engine: middleware, serializer, validator and every
// registered route mounted under /api. ctxMiddleware injects per-request
// dependencies (feature packages resolve them back via context keys).
func Init(cfg config.WebConfig, debug bool, ctxMiddleware echo.MiddlewareFunc) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = debug
	e.JSONSerializer = &jsonSerializer{}
	e.Validator = NewValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			zap.L().Error("panic in handler",
				zap.String("path", c.Path()), zap.Error(err), zap.ByteString("stack", stack))
			return err
		},
	}))
	e.Use(requestLogger())
	if ctxMiddleware != nil {
		e.Use(ctxMiddleware)
	}

	api := e.Group("/api")
	for _, r := range registry {
		api.Add(r.method, r.path, r.handler)
	}

	return &WebServer{root: e, cfg: cfg}
}

// Start blocks serving HTTP until shutdown
func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	zap.L().Info("http server listening", zap.String("addr", addr))
	err := s.root.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// Echo exposes the underlying engine for tests
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// ParsePagination reads page/pageSize query params with sane bounds
func ParsePagination(c echo.Context) (page, pageSize int) {
	page = cast.ToInt(c.QueryParam("page"))
	pageSize = cast.ToInt(c.QueryParam("pageSize"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)),
			)
			return err
		}
	}
}

type jsonSerializer struct{}

func (j *jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (j *jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}
