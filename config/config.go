package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// SimConfig holds the synthetic data knobs. The inclusion probabilities are
// presentation heuristics, not topology constraints, so they are configurable
// rather than constants.
type SimConfig struct {
	// RefreshInterval is the sample batch regeneration period in seconds.
	RefreshInterval int `yaml:"refresh_interval" json:"refresh_interval"`
	// SearchDebounceMs is the quiet period before a search query commits.
	SearchDebounceMs int `yaml:"search_debounce_ms" json:"search_debounce_ms"`
	// LatencyModel selects "uniform" or "distance" sample generation.
	LatencyModel string `yaml:"latency_model" json:"latency_model"`
	// ExchangeRegionProbability keeps an exchange-region pair in the batch.
	ExchangeRegionProbability float64 `yaml:"exchange_region_probability" json:"exchange_region_probability"`
	// CrossProviderProbability keeps a cross-provider region-region pair.
	CrossProviderProbability float64 `yaml:"cross_provider_probability" json:"cross_provider_probability"`
	// HistoryPoints is the number of points in a historical series.
	HistoryPoints int `yaml:"history_points" json:"history_points"`
	// RetentionHours bounds the in-memory sample recorder.
	RetentionHours int `yaml:"retention_hours" json:"retention_hours"`
}

type AppConfig struct {
	System     SysConfig `yaml:"system" json:"system"`
	Web        WebConfig `yaml:"web" json:"web"`
	Logger     LogConfig `yaml:"logger" json:"logger"`
	Simulation SimConfig `yaml:"simulation" json:"simulation"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "latencyglobe",
		Location: "Asia/Shanghai",
		Workdir:  "/var/latencyglobe",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1980,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/latencyglobe/latencyglobe.log",
	},
	Simulation: SimConfig{
		RefreshInterval:           10,
		SearchDebounceMs:          300,
		LatencyModel:              "distance",
		ExchangeRegionProbability: 0.30,
		CrossProviderProbability:  0.10,
		HistoryPoints:             100,
		RetentionHours:            24,
	},
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// LoadConfig reads the YAML config file, falling back to defaults when the
// file is absent. Environment variables override file values.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}
	setEnvValues(cfg)
	if cfg.Simulation.HistoryPoints <= 0 {
		cfg.Simulation.HistoryPoints = DefaultAppConfig.Simulation.HistoryPoints
	}
	if cfg.Simulation.RefreshInterval <= 0 {
		cfg.Simulation.RefreshInterval = DefaultAppConfig.Simulation.RefreshInterval
	}
	if cfg.Simulation.SearchDebounceMs <= 0 {
		cfg.Simulation.SearchDebounceMs = DefaultAppConfig.Simulation.SearchDebounceMs
	}
	if cfg.Simulation.RetentionHours <= 0 {
		cfg.Simulation.RetentionHours = DefaultAppConfig.Simulation.RetentionHours
	}
	return cfg
}

func setEnvValues(cfg *AppConfig) {
	setEnvStrValue("LATENCYGLOBE_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvStrValue("LATENCYGLOBE_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("LATENCYGLOBE_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvStrValue("LATENCYGLOBE_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("LATENCYGLOBE_WEB_PORT", &cfg.Web.Port)
	setEnvStrValue("LATENCYGLOBE_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvStrValue("LATENCYGLOBE_SIM_LATENCY_MODEL", &cfg.Simulation.LatencyModel)
	setEnvIntValue("LATENCYGLOBE_SIM_REFRESH_INTERVAL", &cfg.Simulation.RefreshInterval)
	setEnvIntValue("LATENCYGLOBE_SIM_HISTORY_POINTS", &cfg.Simulation.HistoryPoints)
}

func setEnvStrValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}
