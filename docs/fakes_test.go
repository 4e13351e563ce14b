package docs

import (
	"net/http"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
)

type fakeAdapter struct{ instance any }

func (f fakeAdapter) Instance() any { return f.instance }

type fakeApp struct{ adapter app.HTTPAdapter }

func (f *fakeApp) HTTPAdapter() app.HTTPAdapter { return f.adapter }

func appWith(instance any) *fakeApp {
	return &fakeApp{adapter: fakeAdapter{instance: instance}}
}

type recordingRouter struct {
	patterns []string
	handlers map[string]http.Handler
}

func (r *recordingRouter) Handle(pattern string, handler http.Handler) {
	if r.handlers == nil {
		r.handlers = make(map[string]http.Handler)
	}
	r.patterns = append(r.patterns, pattern)
	r.handlers[pattern] = handler
}

type recordingBuilder struct {
	calls int
	opts  Options
	doc   *openapi.Document
	err   error
}

func (b *recordingBuilder) Build(_ app.Application, opts Options) (*openapi.Document, error) {
	b.calls++
	b.opts = opts
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

type recordingMounter struct {
	calls       int
	application app.Application
	doc         *openapi.Document
	opts        Options
	err         error
}

func (m *recordingMounter) Mount(application app.Application, doc *openapi.Document, opts Options) error {
	m.calls++
	m.application = application
	m.doc = doc
	m.opts = opts
	return m.err
}

func testDocument() *openapi.Document {
	return &openapi.Document{
		OpenAPI: openapi.Version,
		Info:    openapi.Info{Title: "Items API", Version: "1.0"},
		Paths:   map[string]*openapi.PathItem{},
	}
}
