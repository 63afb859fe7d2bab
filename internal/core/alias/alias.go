// Package alias maps free-form CSV headers onto the canonical field names
package alias

import "stockboard/internal/core/normalize"

// Canonical field names
const (
	Tipo       = "tipo"
	Produto    = "produto"
	Categoria  = "categoria"
	Quantidade = "quantidade"
	Unidade    = "unidade_de_medida"
	ID         = "id"
	CreatedAt  = "created_at"
	PesoKg     = "peso_kg"
)

// table lists the recognized aliases per canonical name, already in slug form
// alias sets must stay disjoint, a header can resolve to one canonical name only
var table = map[string][]string{
	Tipo: {
		"tipo", "type", "kind", "tipo_estoque", "tipo_de_estoque", "tipo_registro",
	},
	Produto: {
		"produto", "product", "item", "animal", "nome", "name", "descricao", "description",
		"raca", "especie", "insumo", "material",
	},
	Categoria: {
		"categoria", "category", "class", "classe", "categoria_animal", "faixa_etaria", "grupo",
	},
	Quantidade: {
		"quantidade", "qtd", "qtde", "quant", "quantity", "qty", "count", "cabeca", "cabecas",
		"numero_de_cabecas", "n_cabecas", "num_cabecas", "total_cabecas", "estoque", "saldo",
	},
	Unidade: {
		"unidade_de_medida", "unidade", "unidade_medida", "un", "und", "unid", "unit", "uom", "medida",
	},
	ID: {
		"id", "codigo", "cod", "code", "identificador",
	},
	CreatedAt: {
		"created_at", "createdat", "criado_em", "data", "date", "data_cadastro", "data_criacao", "timestamp",
	},
	PesoKg: {
		"peso_kg", "peso", "peso_total", "peso_total_kg", "peso_vivo", "weight", "weight_kg", "kg",
	},
}

// index is the reverse lookup slug -> canonical name built once from table
var index = buildIndex(table)

func buildIndex(t map[string][]string) map[string]string {
	idx := make(map[string]string, 96)
	for canonical, aliases := range t {
		for _, a := range aliases {
			idx[a] = canonical
		}
	}
	return idx
}

// Resolve returns the canonical field name for a raw header
// unrecognized headers come back as their slug so callers can ignore them
func Resolve(header string) string {
	s := normalize.Slug(header)
	if c, ok := index[s]; ok {
		return c
	}
	return s
}

// Canonical reports whether name is one of the canonical field names
func Canonical(name string) bool {
	_, ok := table[name]
	return ok
}

