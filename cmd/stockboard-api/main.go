// @title         stockboard API
// @version       0.1.0
// @description   Livestock and stock CSV uploads with per-unit, per-category and per-product views

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stockboard/internal/core/version"
	"stockboard/internal/platform/blob"
	"stockboard/internal/platform/config"
	"stockboard/internal/platform/logger"
	"stockboard/internal/platform/metrics"
	phttp "stockboard/internal/platform/net/http"

	"stockboard/internal/modkit/module"
	"stockboard/internal/services/api"
	uploads "stockboard/internal/services/api/uploads/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("STOCKBOARD_API_")
	blobSettings := blob.SettingsFrom(root.Prefix("STOCKBOARD_BLOB_"))

	// persisted upload list (pg brings up its own pool)
	store, closeStore, err := blob.Boot(ctx, root, blobSettings, version.Service)
	if err != nil {
		l.Panic().Err(err).Str("driver", string(blobSettings.Driver)).Msg("blob.Boot failed")
	}
	defer func() {
		if err := closeStore(); err != nil {
			l.Error().Err(err).Msg("failed to close blob store")
		}
	}()

	// http server (reads STOCKBOARD_API_PORT / STOCKBOARD_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	mods := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Blob:           store,
			Metrics:        metrics.New(),
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	for _, m := range mods {
		if up, ok := module.PortsOf[uploads.ServicePort](m); ok {
			list, _ := up.List(ctx)
			l.Info().Int("uploads", len(list)).Str("addr", srv.Addr()).Msg("stockboard api starting")
		}
	}

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
