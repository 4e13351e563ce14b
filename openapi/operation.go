package openapi

import (
	"net/http"
	"strconv"
)

// OperationBuilder provides a fluent API for attaching OpenAPI metadata
// to a route. It assembles an Operation Object at build time.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object
type OperationBuilder struct {
	operationID string
	summary     string
	description string
	tags        []string
	deprecated  bool
	parameters  []*Parameter
	security    []SecurityRequirement

	requestBody        any
	requestContentType string
	requestDescription string

	responses    map[int]any
	descriptions map[int]string
}

func newOperationBuilder() *OperationBuilder {
	return &OperationBuilder{
		responses:    make(map[int]any),
		descriptions: make(map[int]string),
	}
}

// OperationID sets the operation ID.
func (b *OperationBuilder) OperationID(id string) *OperationBuilder {
	b.operationID = id
	return b
}

// Summary sets the operation summary.
func (b *OperationBuilder) Summary(s string) *OperationBuilder {
	b.summary = s
	return b
}

// Description sets the operation description.
func (b *OperationBuilder) Description(d string) *OperationBuilder {
	b.description = d
	return b
}

// Tags adds one or more tags to the operation.
func (b *OperationBuilder) Tags(tags ...string) *OperationBuilder {
	b.tags = append(b.tags, tags...)
	return b
}

// Deprecated marks the operation as deprecated.
func (b *OperationBuilder) Deprecated() *OperationBuilder {
	b.deprecated = true
	return b
}

// Query adds a query parameter whose schema is generated from example.
func (b *OperationBuilder) Query(name, description string, required bool, example any) *OperationBuilder {
	b.parameters = append(b.parameters, &Parameter{
		Name:        name,
		In:          "query",
		Description: description,
		Required:    required,
		Schema:      NewSchemaGenerator().Generate(example),
	})
	return b
}

// Header adds a header parameter of type string.
func (b *OperationBuilder) Header(name, description string, required bool) *OperationBuilder {
	b.parameters = append(b.parameters, &Parameter{
		Name:        name,
		In:          "header",
		Description: description,
		Required:    required,
		Schema:      &Schema{Type: "string"},
	})
	return b
}

// Security sets per-operation security requirements, overriding the
// document-level requirements.
func (b *OperationBuilder) Security(reqs ...SecurityRequirement) *OperationBuilder {
	b.security = reqs
	return b
}

// Request registers an application/json request body type.
func (b *OperationBuilder) Request(body any) *OperationBuilder {
	return b.RequestContent("application/json", body)
}

// RequestContent registers a request body with the given content type.
// The body can be a Go value (schema generated via reflection) or a *Schema.
func (b *OperationBuilder) RequestContent(contentType string, body any) *OperationBuilder {
	b.requestContentType = contentType
	b.requestBody = body
	return b
}

// RequestDescription sets the description for the request body.
func (b *OperationBuilder) RequestDescription(desc string) *OperationBuilder {
	b.requestDescription = desc
	return b
}

// Response registers an application/json response type for the given HTTP
// status code. Pass nil body for responses with no content (e.g., 204).
func (b *OperationBuilder) Response(statusCode int, body any) *OperationBuilder {
	b.responses[statusCode] = body
	return b
}

// ResponseDescription overrides the default description of a response,
// which is the HTTP status text.
func (b *OperationBuilder) ResponseDescription(statusCode int, desc string) *OperationBuilder {
	b.descriptions[statusCode] = desc
	return b
}

// buildOperation assembles the final Operation. Path parameters discovered
// from the route pattern come first, followed by builder parameters.
func (b *OperationBuilder) buildOperation(gen *SchemaGenerator, pathParams []*Parameter) *Operation {
	op := &Operation{
		OperationID: b.operationID,
		Summary:     b.summary,
		Description: b.description,
		Deprecated:  b.deprecated,
		Security:    b.security,
		Responses:   make(map[string]*Response),
	}
	if len(b.tags) > 0 {
		op.Tags = append([]string(nil), b.tags...)
	}

	params := make([]*Parameter, 0, len(pathParams)+len(b.parameters))
	params = append(params, pathParams...)
	params = append(params, b.parameters...)
	if len(params) > 0 {
		op.Parameters = params
	}

	if b.requestContentType != "" {
		op.RequestBody = &RequestBody{
			Description: b.requestDescription,
			Required:    true,
			Content: map[string]*MediaType{
				b.requestContentType: {Schema: gen.Generate(b.requestBody)},
			},
		}
	}

	for code, body := range b.responses {
		desc := b.descriptions[code]
		if desc == "" {
			desc = http.StatusText(code)
		}
		resp := &Response{Description: desc}
		if body != nil {
			resp.Content = map[string]*MediaType{
				"application/json": {Schema: gen.Generate(body)},
			}
		}
		op.Responses[strconv.Itoa(code)] = resp
	}

	if len(op.Responses) == 0 {
		op.Responses["200"] = &Response{Description: http.StatusText(http.StatusOK)}
	}

	return op
}
