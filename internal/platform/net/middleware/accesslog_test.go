package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockboard/internal/platform/net/middleware"
)

func TestAccessLogZerolog_PassThrough(t *testing.T) {
	cases := []struct {
		name string
		opt  middleware.AccessLogOptions
		path string
		code int
	}{
		{"plain", middleware.AccessLogOptions{}, "/x", http.StatusCreated},
		{"slow", middleware.AccessLogOptions{Slow: time.Nanosecond}, "/slow", http.StatusOK},
		{"server error", middleware.AccessLogOptions{}, "/boom", http.StatusInternalServerError},
		{"quiet", middleware.AccessLogOptions{Quiet: []string{"/api/v1/meta/health"}}, "/api/v1/meta/health", http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(c.code)
				_, _ = io.WriteString(w, "body")
			})
			rr := httptest.NewRecorder()
			middleware.AccessLogZerolog(c.opt)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, c.path, nil))
			if rr.Code != c.code || rr.Body.String() != "body" {
				t.Fatalf("got %d %q", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAccessLogZerolog_ResponseControllerReachesWriter(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "x")
		if err := http.NewResponseController(w).Flush(); err != nil {
			t.Errorf("flush through capture writer: %v", err)
		}
	})
	rr := httptest.NewRecorder()
	middleware.AccessLogZerolog(middleware.AccessLogOptions{})(next).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if !rr.Flushed {
		t.Fatalf("expected recorder to be flushed")
	}
}
