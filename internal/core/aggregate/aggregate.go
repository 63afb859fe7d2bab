// Package aggregate derives per-batch totals and distributions from canonical rows.
// Every function is pure, it reads rows and returns fresh slices
package aggregate

import (
	"slices"
	"strings"

	"stockboard/internal/core/canon"
)

// UnitTotal is the summed quantity for one unit of measure
type UnitTotal struct {
	Unit  string  `json:"unit"`
	Total float64 `json:"total"`
}

// CategoryCount is the number of rows carrying one category
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ProductTotal is the summed quantity of one product within a unit
type ProductTotal struct {
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}

// TotalsByUnit sums quantity per trimmed unit, an empty unit counts as "unid".
// Groups come back in first-appearance order
func TotalsByUnit(rows []canon.Row) []UnitTotal {
	idx := map[string]int{}
	var out []UnitTotal
	for _, r := range rows {
		u := strings.TrimSpace(r.Unit)
		if u == "" {
			u = canon.UnitGeneric
		}
		i, ok := idx[u]
		if !ok {
			i = len(out)
			idx[u] = i
			out = append(out, UnitTotal{Unit: u})
		}
		out[i].Total += r.Qty
	}
	return out
}

// ByCategory counts rows per trimmed non-empty category, highest count first.
// Empty output means the batch has no category dimension
func ByCategory(rows []canon.Row) []CategoryCount {
	idx := map[string]int{}
	var out []CategoryCount
	for _, r := range rows {
		c := strings.TrimSpace(r.Categoria)
		if c == "" {
			continue
		}
		i, ok := idx[c]
		if !ok {
			i = len(out)
			idx[c] = i
			out = append(out, CategoryCount{Category: c})
		}
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b CategoryCount) int { return b.Count - a.Count })
	return out
}

// ByProduct sums quantity per trimmed product among rows whose trimmed unit equals unit,
// largest sum first. Rows without a product are grouped under "(sem produto)"; category
// only rows (no product, zero quantity) count in ByCategory but not here
func ByProduct(rows []canon.Row, unit string) []ProductTotal {
	unit = strings.TrimSpace(unit)
	idx := map[string]int{}
	var out []ProductTotal
	for _, r := range rows {
		if strings.TrimSpace(r.Unit) != unit {
			continue
		}
		p := strings.TrimSpace(r.Produto)
		if p == "" {
			if r.Qty == 0 {
				continue
			}
			p = canon.NoProductLabel
		}
		i, ok := idx[p]
		if !ok {
			i = len(out)
			idx[p] = i
			out = append(out, ProductTotal{Product: p})
		}
		out[i].Total += r.Qty
	}
	slices.SortStableFunc(out, func(a, b ProductTotal) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		}
		return 0
	})
	return out
}

// Units lists the distinct non-empty trimmed units in first-appearance order
func Units(rows []canon.Row) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rows {
		u := strings.TrimSpace(r.Unit)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// DefaultUnit is the first selectable unit, "" when the batch has none
func DefaultUnit(rows []canon.Row) string {
	for _, r := range rows {
		if u := strings.TrimSpace(r.Unit); u != "" {
			return u
		}
	}
	return ""
}
