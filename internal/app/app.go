// Package app wires the application together: config, logging, the seed
// catalog, the live session, the scheduler and the web server.
package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"github.com/talkincode/latencyglobe/config"
	"github.com/talkincode/latencyglobe/internal/api"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/session"
	"github.com/talkincode/latencyglobe/internal/webserver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	sched     *cron.Cron
	bus       evbus.Bus
	cat       *catalog.Catalog
	sess      *session.Session
	web       *webserver.WebServer
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ SessionProvider   = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Catalog() *catalog.Catalog {
	return a.cat
}

func (a *Application) Session() *session.Session {
	return a.sess
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Bus() evbus.Bus {
	return a.bus
}

func (a *Application) WebServer() *webserver.WebServer {
	return a.web
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	a.bus = evbus.New()
	a.cat = catalog.New()

	a.sess, err = session.New(a.cat, cfg.Simulation, a.bus)
	if err != nil {
		return err
	}
	exchanges, regions := a.cat.Size()
	zap.S().Infof("catalog loaded, exchanges: %d, regions: %d", exchanges, regions)

	api.RegisterRoutes()
	a.web = webserver.Init(cfg.Web, cfg.System.Debug, api.ContextMiddleware(a.sess, a.cat))

	a.initJob()
	return nil
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// StartBackgroundJobs launches the session refresh loop; the cron scheduler
// is already running after Init.
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	a.sess.Start(ctx)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.sess != nil {
		a.sess.Stop()
	}
	_ = zap.L().Sync()
}
