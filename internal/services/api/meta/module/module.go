// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"stockboard/internal/core/version"
	modkit "stockboard/internal/modkit"
	"stockboard/internal/modkit/httpkit"
	"stockboard/internal/modkit/swaggerkit"
	str "stockboard/internal/platform/strings"

	metahttp "stockboard/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{deps: deps, startedAt: time.Now()}

	// keep the check an untyped nil when there is no store
	var blobCheck any
	if deps.Blob != nil {
		blobCheck = deps.Blob
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Checks:      []metahttp.Check{{Name: "blob", Pinger: blobCheck}},
		})
		external(r)
	}
	m.built = b

	swaggerkit.Register(metahttp.Docs)
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.built.Ports }
