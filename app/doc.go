// Package app provides the application handle documentation is mounted on.
//
// An App wraps a chi router together with an OpenAPI operation registry:
//
//	a := app.New(app.WithLogger(logger))
//	a.Handle(http.MethodGet, "/items", listItems).
//	    Summary("List items").
//	    Response(http.StatusOK, []Item{})
//
// Documentation mounts reach the router through HTTPAdapter().Instance(),
// which must satisfy Router. Any type implementing Application can be used
// in place of App, for example to mount on an *http.ServeMux.
package app
