package httpkit

import (
	"net/http"
	"testing"
)

func TestMountUnder_WithPrefix(t *testing.T) {
	r := &fakeRouter{}
	mw := func(next http.Handler) http.Handler { return next }

	MountUnder(r, "/uploads", []func(http.Handler) http.Handler{mw}, func(sub Router) {
		sub.Get("/", nil)
	})

	if len(r.prefixes) != 1 || r.prefixes[0] != "/uploads" {
		t.Fatalf("prefixes = %v", r.prefixes)
	}
	if r.useCalls != 1 || r.mwLen != 1 {
		t.Fatalf("Use calls=%d len=%d", r.useCalls, r.mwLen)
	}
	if len(r.routes) != 1 || r.routes[0] != "GET /" {
		t.Fatalf("routes = %v", r.routes)
	}
}

func TestMountUnder_EmptyPrefixUsesGroup(t *testing.T) {
	for _, prefix := range []string{"", "/"} {
		r := &fakeRouter{}
		MountUnder(r, prefix, nil, func(Router) {})
		if r.groups != 1 || len(r.prefixes) != 0 {
			t.Fatalf("prefix %q: groups=%d prefixes=%v", prefix, r.groups, r.prefixes)
		}
		if r.useCalls != 0 {
			t.Fatalf("prefix %q: Use should not be called without middleware", prefix)
		}
	}
}
