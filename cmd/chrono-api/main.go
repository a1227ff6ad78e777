// @title         Chrono API
// @version       0.1.0
// @description   Calendrical diff and apply over timezone-aware civil timestamps

package main

import (
	"context"

	"chrono/internal/core/tzdb"
	"chrono/internal/platform/config"
	"chrono/internal/platform/logger"
	phttp "chrono/internal/platform/net/http"

	"chrono/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CHRONO_API_*)
	root := config.New()
	apiCfg := root.Prefix("CHRONO_API_")

	// bring up logging early
	l := logger.Get()

	// zone data comes from the embedded tz database; warm the common case
	zones := tzdb.NewProvider()
	if _, err := zones.Load("UTC"); err != nil {
		l.Panic().Err(err).Msg("tzdb bootstrap failed")
	}

	// http server (reads CHRONO_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Zones:          zones,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
