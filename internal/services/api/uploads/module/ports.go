package module

import (
	"context"
	"io"

	"stockboard/internal/core/aggregate"
	"stockboard/internal/services/api/uploads/domain"
	uploadssvc "stockboard/internal/services/api/uploads/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptUploadsPort struct{ svc uploadssvc.Service }

var _ domain.ServicePort = adaptUploadsPort{}

// List returns the uploads in upload order
func (a adaptUploadsPort) List(ctx context.Context) ([]domain.Info, error) { return a.svc.List(ctx) }

// Get returns one upload by id or tipo
func (a adaptUploadsPort) Get(ctx context.Context, ref string) (domain.Upload, error) {
	return a.svc.Get(ctx, ref)
}

// Ingest appends a CSV file as a new upload
func (a adaptUploadsPort) Ingest(ctx context.Context, fileName string, r io.Reader) (domain.Upload, error) {
	return a.svc.Ingest(ctx, fileName, r)
}

// RemoveLast drops the most recent upload
func (a adaptUploadsPort) RemoveLast(ctx context.Context, c domain.Confirmer) (domain.MutationResult, error) {
	return a.svc.RemoveLast(ctx, c)
}

// ClearAll drops every upload
func (a adaptUploadsPort) ClearAll(ctx context.Context, c domain.Confirmer) (domain.MutationResult, error) {
	return a.svc.ClearAll(ctx, c)
}

// HardReset empties the list and the persisted document
func (a adaptUploadsPort) HardReset(ctx context.Context) (domain.MutationResult, error) {
	return a.svc.HardReset(ctx)
}

// Totals sums quantity per unit
func (a adaptUploadsPort) Totals(ctx context.Context, in domain.ViewInput) ([]aggregate.UnitTotal, error) {
	return a.svc.Totals(ctx, in)
}

// Categories counts rows per category
func (a adaptUploadsPort) Categories(ctx context.Context, in domain.ViewInput) ([]aggregate.CategoryCount, error) {
	return a.svc.Categories(ctx, in)
}

// Units lists the selectable units
func (a adaptUploadsPort) Units(ctx context.Context, in domain.ViewInput) ([]string, error) {
	return a.svc.Units(ctx, in)
}

// Products sums quantity per product for one unit
func (a adaptUploadsPort) Products(ctx context.Context, in domain.ProductsInput) ([]aggregate.ProductTotal, error) {
	return a.svc.Products(ctx, in)
}

// Summary bundles every view of one upload
func (a adaptUploadsPort) Summary(ctx context.Context, in domain.ProductsInput) (domain.Summary, error) {
	return a.svc.Summary(ctx, in)
}

// Palette returns chart colors
func (a adaptUploadsPort) Palette(ctx context.Context, in domain.PaletteInput) ([]string, error) {
	return a.svc.Palette(ctx, in)
}
