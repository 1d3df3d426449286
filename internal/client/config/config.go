package config

import "time"

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "JOBTRACKER_"

// Config holds runtime settings for the JobTracker CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: local SQLite file holding the saved session.
//   - RequestTimeout: deadline applied to each backend call.
//   - ExportDir: directory the export view downloads snapshots into.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string        `env:"SERVER_ADDR"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	DatabasePath        string        `env:"CLIENT_DB"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	ExportDir           string        `env:"EXPORT_DIR"`
	LogLevel            string        `env:"CLIENT_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "jobtracker.db"
	c.RequestTimeout = 10 * time.Second
	c.ExportDir = "."
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
