package service

import (
	"context"
	"slices"
	"strings"

	"stockboard/internal/core/aggregate"
	"stockboard/internal/core/palette"
	perr "stockboard/internal/platform/errors"
	"stockboard/internal/services/api/uploads/domain"
)

// Totals sums quantity per unit of measure
func (s *Svc) Totals(ctx context.Context, in domain.ViewInput) ([]aggregate.UnitTotal, error) {
	u, err := s.Get(ctx, in.Upload)
	if err != nil {
		return nil, err
	}
	return aggregate.TotalsByUnit(u.Rows), nil
}

// Categories counts rows per category; empty means the upload has no category dimension
func (s *Svc) Categories(ctx context.Context, in domain.ViewInput) ([]aggregate.CategoryCount, error) {
	u, err := s.Get(ctx, in.Upload)
	if err != nil {
		return nil, err
	}
	return aggregate.ByCategory(u.Rows), nil
}

// Units lists the selectable units of an upload
func (s *Svc) Units(ctx context.Context, in domain.ViewInput) ([]string, error) {
	u, err := s.Get(ctx, in.Upload)
	if err != nil {
		return nil, err
	}
	return aggregate.Units(u.Rows), nil
}

// Products sums quantity per product for one unit, the first unit when none is given
func (s *Svc) Products(ctx context.Context, in domain.ProductsInput) ([]aggregate.ProductTotal, error) {
	u, err := s.Get(ctx, in.Upload)
	if err != nil {
		return nil, err
	}
	unit, err := pickUnit(u, in.Unit)
	if err != nil {
		return nil, err
	}
	return aggregate.ByProduct(u.Rows, unit), nil
}

// Summary bundles every view of one upload with a palette sized for its chart
func (s *Svc) Summary(ctx context.Context, in domain.ProductsInput) (domain.Summary, error) {
	u, err := s.Get(ctx, in.Upload)
	if err != nil {
		return domain.Summary{}, err
	}
	unit, err := pickUnit(u, in.Unit)
	if err != nil {
		return domain.Summary{}, err
	}

	out := domain.Summary{
		Upload:     u.Info(),
		Totals:     aggregate.TotalsByUnit(u.Rows),
		Categories: aggregate.ByCategory(u.Rows),
		Units:      aggregate.Units(u.Rows),
		Unit:       unit,
		Products:   aggregate.ByProduct(u.Rows, unit),
	}
	n := len(out.Categories)
	if n == 0 {
		n = len(out.Products)
	}
	out.Palette = palette.Generate(n)
	return out, nil
}

// Palette returns n chart colors, never an empty list
func (s *Svc) Palette(_ context.Context, in domain.PaletteInput) ([]string, error) {
	return Colors(in.N)
}

// Colors is Palette without a store, n must be within [0, palette.Max]
func Colors(n int) ([]string, error) {
	switch {
	case n < 0:
		return nil, perr.WithField(perr.InvalidArgf("n must not be negative"), "n")
	case n > palette.Max:
		return nil, perr.WithField(perr.InvalidArgf("n must be at most %d", palette.Max), "n")
	}
	return palette.Generate(n), nil
}

func pickUnit(u domain.Upload, unit string) (string, error) {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return aggregate.DefaultUnit(u.Rows), nil
	}
	if !slices.Contains(aggregate.Units(u.Rows), unit) {
		return "", perr.WithField(perr.InvalidArgf("unit %q does not appear in upload %q", unit, u.Tipo), "unit")
	}
	return unit, nil
}
