// Package scalar serves the Scalar API reference as an http.Handler.
//
//	doc, _ := spec.Build(r)
//	r.Handle("/reference", scalar.Handler(map[string]any{
//	    "content": doc,
//	    "theme":   "purple",
//	}))
//
// Every configuration key except "cdn" and "pageTitle" is forwarded to the
// browser bundle unchanged.
package scalar
