// Package api provides the HTTP API for the application
package api

import (
	"chrono/internal/core/tzdb"
	"chrono/internal/platform/config"
	"chrono/internal/platform/logger"
	phttp "chrono/internal/platform/net/http"

	"chrono/internal/modkit"
	"chrono/internal/modkit/httpkit"

	intervalmod "chrono/internal/services/api/interval/module"
	metamod "chrono/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Zones          *tzdb.Provider
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}
	deps := modkit.Deps{
		Log:   *log,
		Cfg:   opt.Config,
		Zones: opt.Zones,
	}

	mods := []modkit.Module{
		metamod.New(deps),
		intervalmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
