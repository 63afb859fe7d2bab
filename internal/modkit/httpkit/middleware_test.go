package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockboard/internal/platform/config"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_RequestReachesHandler(t *testing.T) {
	hit := 0
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		w.WriteHeader(http.StatusNoContent)
	})
	root := applyStack(final, CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if hit != 1 {
		t.Fatalf("final handler hits = %d, want 1", hit)
	}
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected stack headers, got %v", rr.Header())
	}
}

func TestCommonStack_RecoversPanics(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	root := applyStack(boom, CommonStack(StackOptions{Timeout: time.Second}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestStackFromConfig(t *testing.T) {
	t.Setenv("TEST_STACK_REQUEST_TIMEOUT", "5s")
	t.Setenv("TEST_STACK_CORS_ORIGINS", "http://a.test, http://b.test")

	o := StackFromConfig(config.New().Prefix("TEST_STACK_"))
	if o.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v", o.Timeout)
	}
	if o.Slow != time.Second {
		t.Fatalf("Slow = %v, want default 1s", o.Slow)
	}
	if len(o.CORSOrigins) != 2 || o.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins = %v", o.CORSOrigins)
	}
}
