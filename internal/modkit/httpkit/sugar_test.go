package httpkit

import (
	"net/http"
	"testing"

	phttp "chrono/internal/platform/net/http"
)

// fakeRouterSugar satisfies the platform Router surface we need here
// it records verb + path + handler for assertions
type fakeRouterSugar struct {
	recs []struct {
		verb string
		path string
		h    phttp.Handler
	}
}

func (f *fakeRouterSugar) Route(_ string, fn func(Router))          { fn(f) }
func (f *fakeRouterSugar) Group(fn func(Router))                    { fn(f) }
func (f *fakeRouterSugar) Use(_ ...func(http.Handler) http.Handler) {}
func (f *fakeRouterSugar) Mux() http.Handler                        { return http.NewServeMux() }
func (f *fakeRouterSugar) Handle(path string, h http.Handler)       { /* not used here */ }

func (f *fakeRouterSugar) record(verb, path string, h phttp.Handler) {
	f.recs = append(f.recs, struct {
		verb string
		path string
		h    phttp.Handler
	}{verb, path, h})
}

func (f *fakeRouterSugar) Options(path string, h phttp.Handler) { f.record("OPTIONS", path, h) }
func (f *fakeRouterSugar) Head(path string, h phttp.Handler)    { f.record("HEAD", path, h) }
func (f *fakeRouterSugar) Delete(path string, h phttp.Handler)  { f.record("DELETE", path, h) }
func (f *fakeRouterSugar) Get(path string, h phttp.Handler)     { f.record("GET", path, h) }
func (f *fakeRouterSugar) Post(path string, h phttp.Handler)    { f.record("POST", path, h) }
func (f *fakeRouterSugar) Put(path string, h phttp.Handler)     { f.record("PUT", path, h) }
func (f *fakeRouterSugar) Patch(path string, h phttp.Handler)   { f.record("PATCH", path, h) }

func TestPostJSON_MountsHandler(t *testing.T) {
	r := &fakeRouterSugar{}
	type req struct{ A int }
	PostJSON[req](r, "/b", func(_ *http.Request, _ req) (any, error) { return "ok", nil })

	if len(r.recs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(r.recs))
	}
	rec := r.recs[0]
	if rec.verb != "POST" || rec.path != "/b" {
		t.Fatalf("expected POST /b, got %s %s", rec.verb, rec.path)
	}
	if rec.h == nil {
		t.Fatalf("expected non-nil handler")
	}
}

func TestBodyless_Get_MountsHandler(t *testing.T) {
	r := &fakeRouterSugar{}
	Get(r, "/g", func(_ *http.Request) (any, error) { return "ok", nil })

	if len(r.recs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(r.recs))
	}
	rec := r.recs[0]
	if rec.verb != "GET" || rec.path != "/g" {
		t.Fatalf("expected GET /g, got %s %s", rec.verb, rec.path)
	}
	if rec.h == nil {
		t.Fatalf("expected non-nil handler")
	}
}

func TestBodyless_Post_MountsHandler(t *testing.T) {
	r := &fakeRouterSugar{}
	Post(r, "/h", func(_ *http.Request) (any, error) { return "ok", nil })

	if len(r.recs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(r.recs))
	}
	rec := r.recs[0]
	if rec.verb != "POST" || rec.path != "/h" {
		t.Fatalf("expected POST /h, got %s %s", rec.verb, rec.path)
	}
	if rec.h == nil {
		t.Fatalf("expected non-nil handler")
	}
}
