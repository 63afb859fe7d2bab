package config

import (
	"slices"
	"testing"
	"time"

	kit "stockboard/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	c := New().Prefix("STOCKBOARD_").Prefix("BLOB_")
	if got := c.Key("DRIVER"); got != "STOCKBOARD_BLOB_DRIVER" {
		t.Fatalf("Key = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  stockboard ")
	if got := c.MustString("NAME"); got != "stockboard" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestPorts(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "8080")
	if got := c.MustPort("PORT"); got != ":8080" {
		t.Fatalf("MustPort = %q", got)
	}
	if got := c.MayPort("UNSET", 4000); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("P_BAD", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	if got := c.MayPort("BAD", 4000); got != ":4000" {
		t.Fatalf("MayPort invalid = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_INT", "12")
	t.Setenv("M_INT64", "10485760")
	t.Setenv("M_BOOL", "true")
	t.Setenv("M_DUR", "250ms")
	t.Setenv("M_BADINT", "x")
	t.Setenv("M_BADBOOL", "maybe")
	t.Setenv("M_BADDUR", "soon")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayInt("INT", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADINT", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayInt64("INT64", 1); got != 10<<20 {
		t.Fatalf("MayInt64 = %d", got)
	}
	if got := c.MayInt64("BADINT", 5); got != 5 {
		t.Fatalf("MayInt64 invalid = %d", got)
	}
	if !c.MayBool("BOOL", false) || c.MayBool("BADBOOL", false) || !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BADDUR", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	t.Setenv("C_ORIGINS", " http://a , ,http://b ")
	t.Setenv("C_BLANK", " , ")
	if got := c.MayCSV("ORIGINS", nil); !slices.Equal(got, []string{"http://a", "http://b"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("BLANK", []string{"*"}); !slices.Equal(got, []string{"*"}) {
		t.Fatalf("MayCSV blank = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("DRIVER", "fs", "memory", "fs"); got != "fs" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_DRIVER", "S3")
	if got := c.MayEnum("DRIVER", "fs", "fs", "s3"); got != "s3" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("E_DRIVER", "ftp")
	kit.MustPanic(t, func() { _ = c.MayEnum("DRIVER", "fs", "fs", "s3") })
}
