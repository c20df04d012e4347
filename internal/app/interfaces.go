package app

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"github.com/talkincode/latencyglobe/config"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/session"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CatalogProvider provides the seed topology
type CatalogProvider interface {
	Catalog() *catalog.Catalog
}

// SessionProvider provides the live dashboard session
type SessionProvider interface {
	Session() *session.Session
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() evbus.Bus
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	CatalogProvider
	SessionProvider
	SchedulerProvider
	BusProvider
}
