// Package module wires interval calculations into the API using modkit
package module

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	modkit "chrono/internal/modkit"
	"chrono/internal/modkit/httpkit"
	"chrono/internal/platform/net/http/bind"
	str "chrono/internal/platform/strings"
	intervalhttp "chrono/internal/services/api/interval/http"
	intervalsvc "chrono/internal/services/api/interval/service"
)

// Module implements the interval module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc intervalsvc.Service
}

// New constructs the interval module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("interval"), modkit.WithPrefix("/interval")},
		opts...,
	)...)

	// stamp offsets get validated at bind time
	bind.RegisterValidation("utcoffset", func(fl validator.FieldLevel) bool {
		_, err := intervalsvc.ParseOffset(fl.Field().String())
		return err == nil
	})

	svc := intervalsvc.New(deps.Zones)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptIntervalPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		intervalhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }
