// Package module wires uploads into the API using modkit
package module

import (
	"context"

	modkit "stockboard/internal/modkit"
	"stockboard/internal/modkit/httpkit"
	"stockboard/internal/modkit/swaggerkit"
	"stockboard/internal/platform/blob"
	str "stockboard/internal/platform/strings"
	uploadshttp "stockboard/internal/services/api/uploads/http"
	uploadsrepo "stockboard/internal/services/api/uploads/repo"
	uploadssvc "stockboard/internal/services/api/uploads/service"
)

// Module implements the uploads module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports any

	svc *uploadssvc.Svc
}

// New constructs the uploads module and loads the persisted list
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if !deps.Ready() {
		panic("uploads module requires a blob store")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("uploads"), modkit.WithPrefix("/uploads")}, opts...)...)

	key := deps.Cfg.Prefix("STOCKBOARD_BLOB_").MayString("KEY", blob.DefaultKey)
	maxBytes := deps.Cfg.Prefix("STOCKBOARD_API_").MayInt64("MAX_UPLOAD_BYTES", uploadshttp.DefaultMaxUploadBytes)

	svc := uploadssvc.New(
		uploadsrepo.NewBlob(deps.Blob, key),
		uploadssvc.WithLogger(deps.Logger()),
		uploadssvc.WithMetrics(deps.Metrics),
	)
	n := svc.Load(context.Background())
	deps.Logger().Info().Str("driver", string(deps.Blob.Driver())).Str("key", key).Int("uploads", n).Msg("uploads loaded")

	m := &Module{deps: deps, svc: svc}
	m.ports = adaptUploadsPort{svc: svc}
	if b.Ports != nil {
		m.ports = b.Ports
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		uploadshttp.Register(r, m.svc, maxBytes)
		external(r)
	}
	m.built = b

	swaggerkit.Register(uploadshttp.Docs)
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }
