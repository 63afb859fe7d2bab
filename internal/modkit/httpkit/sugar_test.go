package httpkit

import (
	"net/http"
	"reflect"
	"testing"
)

func TestSugar_RegistersVerbs(t *testing.T) {
	r := &fakeRouter{}
	noop := func(*http.Request) (any, error) { return nil, nil }

	GetJSON(r, "/uploads", noop)
	DeleteJSON(r, "/uploads/last", noop)
	Post(r, "/uploads", noop)
	PostJSON(r, "/uploads/totals", func(*http.Request, unitIn) (any, error) { return nil, nil })

	want := []string{"GET /uploads", "DELETE /uploads/last", "POST /uploads", "POST /uploads/totals"}
	if !reflect.DeepEqual(r.routes, want) {
		t.Fatalf("routes = %v, want %v", r.routes, want)
	}
}
