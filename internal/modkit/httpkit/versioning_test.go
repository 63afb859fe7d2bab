package httpkit

import (
	"net/http"
	"testing"
)

func TestMountAPI_MountsPrefixAndAppliesMiddleware(t *testing.T) {
	r := &fakeRouter{}
	mw := func(next http.Handler) http.Handler { return next }
	hits := 0

	MountAPI(r, "v2", []func(http.Handler) http.Handler{mw, mw}, func(Router) { hits++ })

	if len(r.prefixes) != 1 || r.prefixes[0] != "/api/v2" {
		t.Fatalf("prefixes = %v", r.prefixes)
	}
	if r.useCalls != 1 || r.mwLen != 2 {
		t.Fatalf("Use calls=%d len=%d", r.useCalls, r.mwLen)
	}
	if hits != 1 {
		t.Fatalf("mount hits = %d", hits)
	}
}

func TestMountAPI_TrimsLeadingSlash(t *testing.T) {
	r := &fakeRouter{}
	MountAPI(r, "/v3", nil, func(Router) {})
	if r.prefixes[0] != "/api/v3" {
		t.Fatalf("prefix = %q", r.prefixes[0])
	}
	if r.useCalls != 0 {
		t.Fatalf("Use called without middleware")
	}
}

func TestMountAPIV1(t *testing.T) {
	r := &fakeRouter{}
	MountAPIV1(r, nil, func(Router) {})
	if r.prefixes[0] != APIV1 {
		t.Fatalf("prefix = %q", r.prefixes[0])
	}
}
