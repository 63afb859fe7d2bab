package httpkit

import (
	"net/http"

	phttp "stockboard/internal/platform/net/http"
)

// fakeRouter records what modules mount on it
type fakeRouter struct {
	prefixes []string
	groups   int
	useCalls int
	mwLen    int
	routes   []string
}

func (f *fakeRouter) Get(p string, _ phttp.Handler)    { f.routes = append(f.routes, "GET "+p) }
func (f *fakeRouter) Post(p string, _ phttp.Handler)   { f.routes = append(f.routes, "POST "+p) }
func (f *fakeRouter) Put(p string, _ phttp.Handler)    { f.routes = append(f.routes, "PUT "+p) }
func (f *fakeRouter) Delete(p string, _ phttp.Handler) { f.routes = append(f.routes, "DELETE "+p) }
func (f *fakeRouter) Handle(p string, _ http.Handler)  { f.routes = append(f.routes, "HANDLE "+p) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.mwLen = len(mw)
}

func (f *fakeRouter) Group(fn func(Router)) {
	f.groups++
	fn(f)
}

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

var _ Router = (*fakeRouter)(nil)
