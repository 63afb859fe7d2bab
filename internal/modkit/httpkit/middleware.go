package httpkit

import (
	"net/http"
	"time"

	"stockboard/internal/platform/config"
	"stockboard/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	Slow        time.Duration
	CORSOrigins []string
	Quiet       []string
}

// StackFromConfig reads STOCKBOARD_API_ style settings off cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:        cfg.MayDuration("SLOW_REQUEST", time.Second),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Quiet:       []string{"/api/v1/meta/health", "/metrics"},
	}
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := middleware.Defaults(o.Timeout)
	return append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Quiet: o.Quiet}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
	)
}
