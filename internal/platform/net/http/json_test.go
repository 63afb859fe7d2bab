package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type paletteIn struct {
	N int `json:"n" validate:"min=0,max=64"`
}

func serve(h Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestJSONHandler(t *testing.T) {
	h := JSONHandler(func(_ *http.Request, in paletteIn) (any, error) {
		if in.N == 13 {
			return nil, errors.New("unlucky")
		}
		return map[string]int{"n": in.N * 2}, nil
	})

	if rec := serve(h, "POST", `{"n":7}`); rec.Code != 200 || !strings.Contains(rec.Body.String(), `"n":14`) {
		t.Fatalf("success => %d %q", rec.Code, rec.Body.String())
	}
	if rec := serve(h, "POST", `{`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json => %d", rec.Code)
	}
	if rec := serve(h, "POST", `{"n":99}`); rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "n must be at most 64") {
		t.Fatalf("validation => %d %q", rec.Code, rec.Body.String())
	}
	if rec := serve(h, "POST", `{"n":13}`); rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "unlucky") {
		t.Fatalf("handler error => %d %q", rec.Code, rec.Body.String())
	}
}

func TestJSONHandlerNoBodyAndSugar(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	GetJSON(r, "/ok", func(*http.Request) (any, error) { return "yes", nil })
	DeleteJSON(r, "/gone", func(*http.Request) (any, error) { return nil, errors.New("nope") })
	PostJSON(r, "/p", func(_ *http.Request, in paletteIn) (any, error) { return in.N, nil })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ok", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"data":"yes"`) {
		t.Fatalf("GetJSON => %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("DELETE", "/gone", nil))
	if rec.Code != 500 {
		t.Fatalf("DeleteJSON => %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/p", strings.NewReader(`{"n":3}`)))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"data":3`) {
		t.Fatalf("PostJSON => %d %q", rec.Code, rec.Body.String())
	}
}
