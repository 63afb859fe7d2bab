package domain

import (
	"context"
	"io"

	"stockboard/internal/core/aggregate"
)

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	List(ctx context.Context) ([]Info, error)
	Get(ctx context.Context, ref string) (Upload, error)

	Ingest(ctx context.Context, fileName string, r io.Reader) (Upload, error)
	RemoveLast(ctx context.Context, c Confirmer) (MutationResult, error)
	ClearAll(ctx context.Context, c Confirmer) (MutationResult, error)
	HardReset(ctx context.Context) (MutationResult, error)

	Totals(ctx context.Context, in ViewInput) ([]aggregate.UnitTotal, error)
	Categories(ctx context.Context, in ViewInput) ([]aggregate.CategoryCount, error)
	Units(ctx context.Context, in ViewInput) ([]string, error)
	Products(ctx context.Context, in ProductsInput) ([]aggregate.ProductTotal, error)
	Summary(ctx context.Context, in ProductsInput) (Summary, error)
	Palette(ctx context.Context, in PaletteInput) ([]string, error)
}
