package modkit

import (
	"stockboard/internal/platform/blob"
	"stockboard/internal/platform/config"
	"stockboard/internal/platform/logger"
	"stockboard/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Blob    blob.Store
	Metrics *metrics.Metrics
}

// Logger returns the configured logger or the process logger
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}

// Ready reports whether the deps a stateful module needs are present
func (d Deps) Ready() bool { return d.Blob != nil }
