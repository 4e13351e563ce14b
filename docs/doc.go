// Package docs mounts interactive API documentation on an application from
// a single Options value.
//
// The provider is chosen by Options.Provider:
//
//	swagger-ui (default)  Swagger UI with optional color theme
//	scalar                Scalar API reference
//
// Setup validates the options, regenerates the OpenAPI document from the
// application routes and delegates to the provider mount:
//
//	a := app.New()
//	a.Handle(http.MethodGet, "/items", listItems).
//	    Summary("List items").
//	    Response(http.StatusOK, []Item{})
//
//	opts, err := docs.NewOptions("Items API",
//	    docs.WithSwaggerUI(docs.SwaggerUIOptions{Theme: theme.Dracula}),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := docs.Setup(a, opts); err != nil {
//	    return err
//	}
//
// Invalid options and a nil application are reported as *ConfigurationError.
// An application whose HTTP instance cannot register routes is reported as
// *AdapterError by the scalar mount.
package docs
