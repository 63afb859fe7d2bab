package http

import "stockboard/internal/modkit/swaggerkit"

// Docs adds the uploads operations to the served OpenAPI document
func Docs(spec map[string]any) {
	type op struct{ method, path, summary string }
	for _, o := range []op{
		{"get", "/uploads", "List uploads in upload order"},
		{"post", "/uploads", "Ingest a CSV file"},
		{"delete", "/uploads", "Remove every upload"},
		{"get", "/uploads/{ref}", "One upload with its rows, by id or tipo"},
		{"delete", "/uploads/last", "Remove the most recent upload"},
		{"post", "/uploads/reset", "Clear uploads and delete the persisted document"},
		{"post", "/uploads/totals", "Quantity totals per unit"},
		{"post", "/uploads/categories", "Row count per category"},
		{"post", "/uploads/units", "Selectable units of an upload"},
		{"post", "/uploads/products", "Quantity per product for one unit"},
		{"post", "/uploads/summary", "Every view of one upload"},
		{"post", "/uploads/palette", "Chart colors"},
	} {
		swaggerkit.Path(spec, o.method, o.path, o.summary, "Uploads")
	}

	ingest := swaggerkit.Path(spec, "post", "/uploads", "Ingest a CSV file", "Uploads")
	ingest["responses"] = map[string]any{
		"201": map[string]any{"description": "Created"},
		"400": map[string]any{"description": "Unparseable file"},
		"409": map[string]any{"description": "An upload of this tipo already exists"},
		"422": map[string]any{"description": "Empty or unrecognized batch"},
	}
	ingest["parameters"] = []any{map[string]any{
		"name": "file_name", "in": "query", "required": false,
		"schema": map[string]any{"type": "string"},
	}}
	ingest["requestBody"] = map[string]any{
		"content": map[string]any{
			"multipart/form-data": map[string]any{"schema": map[string]any{
				"type":       "object",
				"properties": map[string]any{"file": map[string]any{"type": "string", "format": "binary"}},
			}},
			"text/csv": map[string]any{"schema": map[string]any{"type": "string"}},
		},
	}
}
