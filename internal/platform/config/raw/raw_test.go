package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " warn ")
	c := New().Prefix("LOG_")
	if got := c.Get("LEVEL", "info"); got != "warn" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("MISSING", "info"); got != "info" {
		t.Fatalf("Get default = %q", got)
	}
	if got := c.Key("LEVEL"); got != "LOG_LEVEL" {
		t.Fatalf("Key = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RB_")
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"no", true, false},
		{"0", true, false},
	}
	for _, tc := range cases {
		t.Setenv("RB_FLAG", tc.val)
		if got := c.GetBool("FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RI_")
	cases := []struct {
		val  string
		want int
	}{
		{"", 7},
		{"12", 12},
		{" 3 ", 3},
		{"-1", 7},
		{"x", 7},
	}
	for _, tc := range cases {
		t.Setenv("RI_N", tc.val)
		if got := c.GetInt("N", 7); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
