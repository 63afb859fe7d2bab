package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"

	"stockboard/internal/core/version"
)

// SpecMutator lets modules add or tweak paths on the served spec
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator, modules call this from their constructor
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops registered mutators for tests
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Spec assembles the OpenAPI document from the base skeleton and registered mutators
func Spec(baseURL string) map[string]any {
	bi := version.Info()
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "stockboard API",
			"version": bi.Version,
		},
		"paths": map[string]any{},
	}
	ensureServers(spec, baseURL)
	ensureErrorResponseDefinition(spec)

	mu.RLock()
	for _, m := range mutators {
		m(spec)
	}
	mu.RUnlock()

	addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "internal error",
	})
	addDefaultResponse(spec, "400", "Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        3,
		"error":       "n must be at most 1024",
		"field":       "n",
	})
	return spec
}

// Path adds a path item; it returns the operation map for further edits
func Path(spec map[string]any, method, path, summary, tag string) map[string]any {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	node, ok := paths[path].(map[string]any)
	if !ok {
		node = map[string]any{}
		paths[path] = node
	}
	op := map[string]any{
		"summary":   summary,
		"tags":      []any{tag},
		"responses": map[string]any{"200": map[string]any{"description": "OK"}},
	}
	node[method] = op
	return op
}

func serveDocJSON(baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Spec(baseURL))
	}
}

func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition mirrors the runtime error envelope
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse injects status on every operation that does not declare it
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
