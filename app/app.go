package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitalvas/docmount/openapi"
)

// Application is the handle documentation is mounted on. It exposes the
// underlying HTTP layer through an adapter.
type Application interface {
	HTTPAdapter() HTTPAdapter
}

// HTTPAdapter gives access to the concrete HTTP instance behind an
// Application. Instance may return nil when no server has been attached.
type HTTPAdapter interface {
	Instance() any
}

// Router is the registration capability documentation mounts require from
// the HTTP instance. *chi.Mux and *http.ServeMux both satisfy it.
type Router interface {
	Handle(pattern string, handler http.Handler)
}

// RouteSource is implemented by applications whose routes can be walked to
// build an OpenAPI document.
type RouteSource interface {
	Routes() chi.Routes
	Spec() *openapi.Spec
}

// App is a chi-backed Application. Routes registered through Handle are
// recorded in the operation registry returned by Spec.
type App struct {
	mux    *chi.Mux
	spec   *openapi.Spec
	logger *zap.Logger
}

var (
	_ Application  = (*App)(nil)
	_ RouteSource  = (*App)(nil)
	_ http.Handler = (*App)(nil)
)

// New creates an App with request ID, access log and recovery middleware
// installed ahead of any middleware passed through WithMiddlewares. The
// access log wraps recovery, so panicking requests are logged with 500.
func New(opts ...Option) *App {
	cfg := &config{
		logger:          zap.NewNop(),
		requestIDHeader: defaultRequestIDHeader,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware(RequestIDConfig{HeaderName: cfg.requestIDHeader, TrustIncoming: cfg.trustRequestID}))
	r.Use(AccessLogMiddleware(cfg.logger))
	r.Use(RecoveryMiddleware(cfg.logger))
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	return &App{
		mux:    r,
		spec:   openapi.NewSpec(openapi.Info{}),
		logger: cfg.logger,
	}
}

// HTTPAdapter returns an adapter whose instance is the underlying *chi.Mux.
func (a *App) HTTPAdapter() HTTPAdapter {
	return chiAdapter{mux: a.mux}
}

// Router returns the chi router for registering routes directly.
// Routes added this way are documented once metadata is attached with
// Spec().Op.
func (a *App) Router() chi.Router {
	return a.mux
}

// Routes returns the route tree walked by the document builder.
func (a *App) Routes() chi.Routes {
	return a.mux
}

// Spec returns the operation registry of the application.
func (a *App) Spec() *openapi.Spec {
	return a.spec
}

// Logger returns the logger the application was created with.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Handle registers handler for method and pattern and returns the builder
// for its OpenAPI operation:
//
//	a.Handle(http.MethodGet, "/items/{id}", getItem).
//	    Summary("Get item").
//	    Response(http.StatusOK, Item{})
func (a *App) Handle(method, pattern string, handler http.HandlerFunc) *openapi.OperationBuilder {
	a.mux.Method(method, pattern, handler)
	return a.spec.Op(method, pattern)
}

// ServeHTTP dispatches the request to the chi router.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

type chiAdapter struct {
	mux *chi.Mux
}

func (c chiAdapter) Instance() any {
	if c.mux == nil {
		return nil
	}
	return c.mux
}
