// Package openapi builds OpenAPI v3.1.0 documents from chi route trees.
//
// Routes are registered on a chi router as usual. Metadata is attached per
// method and pattern through a Spec, and Build walks the router to assemble
// the document:
//
//	r := chi.NewRouter()
//	r.Get("/users/{id}", getUser)
//
//	spec := openapi.NewSpec(openapi.Info{Title: "Users", Version: "1.0.0"})
//	spec.Op(http.MethodGet, "/users/{id}").
//	    Summary("Get a user").
//	    Tags("users").
//	    Response(http.StatusOK, User{}).
//	    Response(http.StatusNotFound, nil)
//
//	doc, err := spec.Build(r)
//
// Only routes with metadata are documented. Route variables become required
// path parameters; regular expressions in chi patterns are dropped from the
// OpenAPI path ("/users/{id:[0-9]+}" becomes "/users/{id}").
//
// # Schemas
//
// Request and response bodies are Go values. Their types are converted to
// JSON Schema by reflection. Named structs are stored in components.schemas
// and referenced with $ref. Field names follow json tags; fields without
// omitempty are required. The openapi struct tag adds annotations:
//
//	type User struct {
//	    ID   string `json:"id" openapi:"format=uuid,readOnly"`
//	    Role string `json:"role" openapi:"enum=admin|user,description=Access level"`
//	}
//
// # Security
//
// Security schemes live in components and may be required document-wide or
// per operation:
//
//	spec.AddSecurityScheme("bearer", &openapi.SecurityScheme{Type: "http", Scheme: "bearer"})
//	spec.AddSecurity(openapi.SecurityRequirement{"bearer": {}})
//
// # Encoding
//
// Document.EncodeJSON and Document.EncodeYAML produce the serialized forms.
// The YAML form uses the same field names as the JSON form.
//
// See: https://spec.openapis.org/oas/v3.1.0
package openapi
