package module

import (
	"fmt"
	"sync"
	"testing"

	kit "stockboard/internal/platform/testkit"
)

type counter interface{ Count() int }

type fixed int

func (f fixed) Count() int { return int(f) }

type stub struct {
	name  string
	ports any
}

func (s stub) Ports() any   { return s.ports }
func (s stub) Name() string { return s.name }

type bundle struct {
	Label   string
	Uploads counter
	hidden  counter
}

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil", nil, 0, false},
		{"direct", fixed(3), 3, true},
		{"struct field", bundle{Label: "x", Uploads: fixed(2)}, 2, true},
		{"pointer bundle", &bundle{Uploads: fixed(5)}, 5, true},
		{"nil pointer", (*bundle)(nil), 0, false},
		{"unexported only", bundle{hidden: fixed(9)}, 0, false},
		{"scalar", "uploads", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[counter](stub{name: "uploads", ports: c.ports})
			if ok != c.ok || (ok && got.Count() != c.want) {
				t.Fatalf("PortsOf = %v, %v", got, ok)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	if got := MustPortsOf[counter](stub{ports: fixed(1)}); got.Count() != 1 {
		t.Fatalf("got %v", got)
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		kit.MustContain(t, fmt.Sprint(r), "meta")
	}()
	MustPortsOf[counter](stub{name: "meta", ports: "nope"})
}

func TestRegistry(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	if _, ok := PortsAs[counter]("uploads"); ok {
		t.Fatal("empty registry resolved a port")
	}
	Register("uploads", fixed(1))
	Register("uploads", fixed(2))
	if c, ok := PortsAs[counter]("uploads"); !ok || c.Count() != 2 {
		t.Fatalf("PortsAs = %v, %v", c, ok)
	}
	if _, ok := PortsAs[fmt.Stringer]("uploads"); ok {
		t.Fatal("type mismatch resolved")
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() { defer wg.Done(); Register(fmt.Sprint("m", i), fixed(i)) }()
		go func() { defer wg.Done(); PortsAs[counter]("uploads") }()
	}
	wg.Wait()

	Reset()
	if _, ok := PortsAs[counter]("uploads"); ok {
		t.Fatal("Reset kept registrations")
	}
}
