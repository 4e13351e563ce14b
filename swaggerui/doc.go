// Package swaggerui mounts Swagger UI and the serialized OpenAPI document on
// an application router.
//
//	err := swaggerui.Setup("api/docs", a, doc, swaggerui.Options{
//	    Explorer:  true,
//	    CustomCSS: theme.CSS(theme.Dracula),
//	})
//	// /api/docs       -> Swagger UI
//	// /api/docs.json  -> JSON document
//	// /api/docs.yaml  -> YAML document
//
// The application must expose a router through its HTTP adapter; otherwise
// Setup returns ErrNoRouter.
package swaggerui
