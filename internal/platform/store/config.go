package store

import (
	"time"

	"stockboard/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// FromConfig reads STOCKBOARD_PG_ style keys off cfg; PG is enabled when DBURL is set
func FromConfig(cfg config.Conf, appName string) Config {
	url := cfg.MayString("DBURL", "")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(cfg.MayInt("MAX_CONNS", 4)),
			LogSQL:         cfg.MayBool("LOG_SQL", false),
			SlowQueryMs:    cfg.MayInt("SLOW_MS", 200),
			ConnectRetries: cfg.MayInt("CONNECT_RETRIES", 10),
			PingTimeout:    cfg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
}
