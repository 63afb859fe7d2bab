// Package api provides the HTTP API for the application
package api

import (
	"stockboard/internal/platform/blob"
	"stockboard/internal/platform/config"
	"stockboard/internal/platform/logger"
	"stockboard/internal/platform/metrics"
	phttp "stockboard/internal/platform/net/http"

	"stockboard/internal/modkit"
	"stockboard/internal/modkit/httpkit"
	"stockboard/internal/modkit/module"
	"stockboard/internal/modkit/swaggerkit"

	metamod "stockboard/internal/services/api/meta/module"
	uploadsmod "stockboard/internal/services/api/uploads/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Blob           blob.Store
	Metrics        *metrics.Metrics
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the mounted modules
func Mount(r phttp.Router, opt Options) []modkit.Module {
	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Blob:    opt.Blob,
		Metrics: opt.Metrics,
	}

	mods := []modkit.Module{
		metamod.New(deps),
		uploadsmod.New(deps),
	}

	// swagger, profiler and metrics live outside the versioned API
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	metrics.Mount(r, "/metrics", opt.Metrics)

	// versioned API with a common middleware stack
	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("STOCKBOARD_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
	return mods
}
