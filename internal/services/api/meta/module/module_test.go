package module

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"stockboard/internal/core/version"
	modkit "stockboard/internal/modkit"
	"stockboard/internal/modkit/swaggerkit"
	"stockboard/internal/platform/blob"
	phttp "stockboard/internal/platform/net/http"
	metahttp "stockboard/internal/services/api/meta/http"
)

type downStore struct{ blob.Store }

func (downStore) Ping(context.Context) error { return errors.New("bucket unreachable") }

func get(t *testing.T, m modkit.Module, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("data: %v", err)
		}
	}
	return rec.Code
}

func TestMeta_HealthVersionService(t *testing.T) {
	t.Cleanup(swaggerkit.Reset)
	m := New(modkit.Deps{})
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("name=%q ports=%v", m.Name(), m.Ports())
	}

	var h metahttp.HealthResponse
	if code := get(t, m, "/meta/health", &h); code != http.StatusOK || !h.OK || h.Service != version.Service {
		t.Fatalf("health = %d %+v", code, h)
	}

	var bi version.BuildInfo
	if get(t, m, "/meta/version", &bi); bi.Service != version.Service {
		t.Fatalf("version = %+v", bi)
	}

	var svc metahttp.ServiceResponse
	if get(t, m, "/meta/service", &svc); svc.Name != version.Service || svc.Uptime < 0 {
		t.Fatalf("service = %+v", svc)
	}
}

func TestMeta_Ready(t *testing.T) {
	t.Cleanup(swaggerkit.Reset)
	cases := []struct {
		name   string
		store  blob.Store
		status string
		check  string
	}{
		{"no store", nil, "degraded", "skipped"},
		{"memory", blob.NewMemory(), "ok", "ok"},
		{"down", downStore{blob.NewMemory()}, "fail", "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rr metahttp.ReadyResponse
			get(t, New(modkit.Deps{Blob: tc.store}), "/meta/ready", &rr)
			if rr.Status != tc.status || len(rr.Checks) != 1 || rr.Checks[0].Status != tc.check {
				t.Fatalf("ready = %+v", rr)
			}
			if rr.Checks[0].Name != "blob" {
				t.Fatalf("check name = %q", rr.Checks[0].Name)
			}
		})
	}
}

func TestMeta_Docs(t *testing.T) {
	t.Cleanup(swaggerkit.Reset)
	New(modkit.Deps{})
	paths := swaggerkit.Spec("/api/v1")["paths"].(map[string]any)
	if _, ok := paths["/meta/ready"]; !ok {
		t.Fatal("meta docs not registered")
	}
}
