package docs

import (
	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
)

// DocumentBuilder generates the OpenAPI document for an application.
type DocumentBuilder interface {
	Build(application app.Application, opts Options) (*openapi.Document, error)
}

// DocumentBuilderFunc adapts a function to DocumentBuilder.
type DocumentBuilderFunc func(application app.Application, opts Options) (*openapi.Document, error)

func (f DocumentBuilderFunc) Build(application app.Application, opts Options) (*openapi.Document, error) {
	return f(application, opts)
}

// OpenAPIBuilder builds documents from applications implementing
// app.RouteSource. Info comes from the title, description and version of
// the options; auth schemes are added to components.
type OpenAPIBuilder struct{}

func (OpenAPIBuilder) Build(application app.Application, opts Options) (*openapi.Document, error) {
	src, ok := application.(app.RouteSource)
	if !ok || src.Spec() == nil {
		return nil, openapi.ErrNoRoutes
	}

	opts = opts.WithDefaults()

	spec := src.Spec().Clone().SetInfo(openapi.Info{
		Title:       opts.Title,
		Description: opts.Description,
		Version:     opts.Version,
	})

	if opts.Auth != nil {
		for name, scheme := range opts.Auth.SecuritySchemes() {
			spec.AddSecurityScheme(name, scheme)
		}
		spec.AddSecurity(opts.Auth.Requirements()...)
	}

	return spec.Build(src.Routes())
}
