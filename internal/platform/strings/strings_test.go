package strings

import (
	"slices"
	"testing"

	kit "stockboard/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET"}
	if got := IfEmpty(nil, def); !slices.Equal(got, def) {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]string{"POST"}, def); !slices.Equal(got, []string{"POST"}) {
		t.Fatalf("IfEmpty = %v", got)
	}
}

func TestOr(t *testing.T) {
	if Or("  ", "unid") != "unid" || Or("kg", "unid") != "kg" {
		t.Fatalf("Or mismatch")
	}
}

func TestMustString(t *testing.T) {
	if MustString("uploads", "name") != "uploads" {
		t.Fatalf("MustString mismatch")
	}
	kit.MustPanic(t, func() { _ = MustString(" ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"uploads":     "/uploads",
		"/uploads/":   "/uploads",
		"  /meta  ":   "/meta",
		"api/v1/docs": "/api/v1/docs",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}
