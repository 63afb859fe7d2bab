// Package canon defines the canonical stock row and the normalizer that builds it
// from a raw, loosely typed spreadsheet record
package canon

// Default labels applied during normalization
const (
	DefaultTipo     = "gado"
	UnitHead        = "cabeça"
	UnitHeadPlural  = "cabeças"
	UnitGeneric     = "unid"
	UnitKilogram    = "kg"
	NoProductLabel  = "(sem produto)"
	integralEpsilon = 1e-9
)

// Cell is one raw header/value pair in source column order
// Value is a string, a Go number, json.Number or nil
type Cell struct {
	Header string
	Value  any
}

// Record is one raw source row, ordered by source column
type Record []Cell

// Row is the normalized unit of stock data
type Row struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"created_at"`
	Tipo      string  `json:"tipo"`
	Produto   string  `json:"produto"`
	Categoria string  `json:"categoria"`
	Qty       float64 `json:"quantidade"`
	Unit      string  `json:"unidade_de_medida"`
}

// Identified reports whether the row carries a product or a category
func (r Row) Identified() bool { return r.Produto != "" || r.Categoria != "" }

// Provenance records which fields normalization filled in rather than read
type Provenance struct {
	TipoExplicit bool // tipo came from the source
	QtyFromPeso  bool // quantity fell back to peso_kg
	UnitInferred bool // unit chosen by quantity shape
}
