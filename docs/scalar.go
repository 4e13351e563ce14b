package docs

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
	"github.com/vitalvas/docmount/scalar"
)

// ScalarMount serves the Scalar API reference at the docs path with
// surrounding slashes trimmed, so "docs/" and "/docs" both mount at "/docs".
// The application's HTTP instance must implement app.Router.
type ScalarMount struct {
	// NewHandler builds the reference handler (default: scalar.Handler).
	NewHandler func(config map[string]any) http.Handler
}

func (m ScalarMount) Mount(application app.Application, doc *openapi.Document, opts Options) error {
	path := opts.path()
	path = "/" + strings.Trim(path, "/")

	config := map[string]any{"content": doc}
	if opts.Scalar != nil {
		if opts.Scalar.Theme != "" {
			config["theme"] = opts.Scalar.Theme
		}
		for k, v := range opts.Scalar.ScalarOptions {
			config[k] = v
		}
	}

	router, err := scalarRouter(application)
	if err != nil {
		return err
	}

	newHandler := m.NewHandler
	if newHandler == nil {
		newHandler = scalar.Handler
	}
	handler := newHandler(config)

	router.Handle(path, handler)
	if path != "/" {
		router.Handle(path+"/", handler)
	}

	return nil
}

func scalarRouter(application app.Application) (app.Router, error) {
	adapter := application.HTTPAdapter()
	if adapter == nil {
		return nil, &AdapterError{Provider: ProviderScalar, Err: ErrNoHTTPAdapter}
	}

	instance := adapter.Instance()
	if instance == nil {
		return nil, &AdapterError{Provider: ProviderScalar, Err: ErrNoHTTPInstance}
	}

	router, ok := instance.(app.Router)
	if !ok {
		return nil, &AdapterError{
			Provider: ProviderScalar,
			Instance: fmt.Sprintf("%T", instance),
			Err:      ErrNoRouteRegistration,
		}
	}

	return router, nil
}
