package docs

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
)

// Mounter serves a built document for one provider.
type Mounter interface {
	Mount(application app.Application, doc *openapi.Document, opts Options) error
}

// MounterFunc adapts a function to Mounter.
type MounterFunc func(application app.Application, doc *openapi.Document, opts Options) error

func (f MounterFunc) Mount(application app.Application, doc *openapi.Document, opts Options) error {
	return f(application, doc, opts)
}

// Dispatcher validates options, builds the document and hands it to the
// mount registered for the selected provider.
type Dispatcher struct {
	builder DocumentBuilder
	mounts  map[Provider]Mounter
	logger  *zap.Logger
}

// DispatcherOption customizes a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithBuilder replaces the document builder (default: OpenAPIBuilder).
func WithBuilder(builder DocumentBuilder) DispatcherOption {
	return func(d *Dispatcher) {
		if builder != nil {
			d.builder = builder
		}
	}
}

// WithMount registers mounter for provider, replacing any previous one.
func WithMount(provider Provider, mounter Mounter) DispatcherOption {
	return func(d *Dispatcher) {
		if mounter == nil {
			delete(d.mounts, provider)
			return
		}
		d.mounts[provider] = mounter
	}
}

// WithLogger sets the logger used for mount diagnostics.
func WithLogger(logger *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher returns a Dispatcher with the OpenAPI builder and both
// provider mounts installed.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		builder: OpenAPIBuilder{},
		mounts: map[Provider]Mounter{
			ProviderSwaggerUI: SwaggerUIMount{},
			ProviderScalar:    ScalarMount{},
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Setup mounts documentation for application. A nil application, invalid
// options or a provider without a mount fail with *ConfigurationError
// before the document is built. Builder and mount errors are returned unchanged.
func (d *Dispatcher) Setup(application app.Application, opts Options) error {
	if isNil(application) {
		return configError(ErrNoApplication)
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	provider := opts.provider()
	mounter, ok := d.mounts[provider]
	if !ok {
		return configError(ErrNoMount)
	}

	doc, err := d.builder.Build(application, opts)
	if err != nil {
		return err
	}

	d.logger.Debug("mounting api docs",
		zap.String("provider", string(provider)),
		zap.String("path", opts.path()),
		zap.String("title", opts.Title),
	)

	return mounter.Mount(application, doc, opts)
}

var defaultDispatcher = NewDispatcher()

// Setup mounts documentation for application with the default dispatcher.
//
//	a := app.New()
//	a.Handle(http.MethodGet, "/items", listItems).Summary("List items")
//	if err := docs.Setup(a, opts); err != nil {
//	    return err
//	}
func Setup(application app.Application, opts Options) error {
	return defaultDispatcher.Setup(application, opts)
}

func isNil(application app.Application) bool {
	if application == nil {
		return true
	}
	v := reflect.ValueOf(application)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
