package canon

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"stockboard/internal/core/alias"
	"stockboard/internal/core/normalize"
	"stockboard/internal/core/numparse"
)

// Normalize builds a canonical Row from a raw record
func Normalize(rec Record) Row {
	row, _ := Inspect(rec)
	return row
}

// Inspect is Normalize plus the provenance of the defaulted fields
//
// Headers are resolved through the alias table in source order so when two columns
// resolve to the same canonical name the later column wins. Produto and categoria may
// both come back empty, filtering those rows is the batch's job
func Inspect(rec Record) (Row, Provenance) {
	fields := make(map[string]any, len(rec))
	for _, c := range rec {
		if name := alias.Resolve(c.Header); alias.Canonical(name) {
			fields[name] = c.Value
		}
	}

	var pv Provenance
	row := Row{
		ID:        passthrough(fields[alias.ID]),
		CreatedAt: passthrough(fields[alias.CreatedAt]),
		Tipo:      text(fields[alias.Tipo]),
		Produto:   text(fields[alias.Produto]),
		Categoria: text(fields[alias.Categoria]),
		Unit:      text(fields[alias.Unidade]),
	}

	row.Qty = numparse.Parse(fields[alias.Quantidade])
	if row.Qty == 0 {
		if w := numparse.Parse(fields[alias.PesoKg]); w != 0 {
			row.Qty = w
			pv.QtyFromPeso = true
			if row.Unit == "" {
				row.Unit = UnitKilogram
			}
		}
	}

	if row.Tipo == "" {
		row.Tipo = DefaultTipo
	} else {
		pv.TipoExplicit = true
	}

	if row.Unit == "" {
		pv.UnitInferred = true
		row.Unit = UnitFor(row.Qty)
	}

	return row, pv
}

// UnitFor picks the default unit from the quantity shape
// whole numbers count heads, anything else is a generic unit
func UnitFor(qty float64) string {
	if math.Abs(qty-math.Round(qty)) < integralEpsilon {
		return UnitHead
	}
	return UnitGeneric
}

// text renders a raw value as a trimmed single-line string
func text(v any) string {
	return strings.TrimSpace(normalize.Sanitize(passthrough(v)))
}

// passthrough renders a raw value as a string without trimming
func passthrough(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case interface{ String() string }:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
