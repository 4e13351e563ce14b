package openapi

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Version is the OpenAPI version written into every built document.
const Version = "3.1.0"

// pathVarRegexp matches chi route variables in the form {name} or {name:regexp}.
var pathVarRegexp = regexp.MustCompile(`\{([^}]+)\}`)

// Spec collects OpenAPI metadata for routes and builds a complete Document.
type Spec struct {
	info            Info
	servers         []Server
	tags            []Tag
	security        []SecurityRequirement
	securitySchemes map[string]*SecurityScheme
	externalDocs    *ExternalDocs
	operations      map[string]*OperationBuilder // keyed by "METHOD pattern"
}

// NewSpec creates a new spec builder with the given API info.
func NewSpec(info Info) *Spec {
	return &Spec{
		info:       info,
		operations: make(map[string]*OperationBuilder),
	}
}

// Info returns the document info the spec was created with.
func (s *Spec) Info() Info {
	return s.info
}

// SetInfo replaces the document info.
func (s *Spec) SetInfo(info Info) *Spec {
	s.info = info
	return s
}

// AddServer adds a server to the spec.
func (s *Spec) AddServer(server Server) *Spec {
	s.servers = append(s.servers, server)
	return s
}

// AddTag adds a tag with optional description and external docs.
func (s *Spec) AddTag(tag Tag) *Spec {
	s.tags = append(s.tags, tag)
	return s
}

// SetExternalDocs sets the document-level external documentation link.
func (s *Spec) SetExternalDocs(url, description string) *Spec {
	s.externalDocs = &ExternalDocs{URL: url, Description: description}
	return s
}

// AddSecurityScheme registers a reusable security scheme in components.
func (s *Spec) AddSecurityScheme(name string, scheme *SecurityScheme) *Spec {
	if s.securitySchemes == nil {
		s.securitySchemes = make(map[string]*SecurityScheme)
	}
	s.securitySchemes[name] = scheme
	return s
}

// AddSecurity appends document-level security requirements.
func (s *Spec) AddSecurity(reqs ...SecurityRequirement) *Spec {
	s.security = append(s.security, reqs...)
	return s
}

// Op returns the OperationBuilder for the route registered with the given
// method and chi pattern, creating it on first use.
//
//	spec.Op(http.MethodGet, "/users/{id}").Summary("Get user")
func (s *Spec) Op(method, pattern string) *OperationBuilder {
	key := operationKey(method, pattern)
	if b, ok := s.operations[key]; ok {
		return b
	}
	b := newOperationBuilder()
	s.operations[key] = b
	return b
}

// Clone returns a copy of the spec that shares operation builders but can
// receive its own info, servers, tags and security without affecting s.
func (s *Spec) Clone() *Spec {
	c := &Spec{
		info:         s.info,
		servers:      append([]Server(nil), s.servers...),
		tags:         append([]Tag(nil), s.tags...),
		security:     append([]SecurityRequirement(nil), s.security...),
		externalDocs: s.externalDocs,
		operations:   make(map[string]*OperationBuilder, len(s.operations)),
	}
	for k, v := range s.operations {
		c.operations[k] = v
	}
	if s.securitySchemes != nil {
		c.securitySchemes = make(map[string]*SecurityScheme, len(s.securitySchemes))
		for k, v := range s.securitySchemes {
			c.securitySchemes[k] = v
		}
	}
	return c
}

func operationKey(method, pattern string) string {
	return strings.ToUpper(method) + " " + pattern
}

// Build walks the chi route tree and assembles a complete OpenAPI Document.
// Only routes that have operation metadata registered through Op appear in
// the document. Wildcard routes are skipped.
func (s *Spec) Build(routes chi.Routes) (*Document, error) {
	if routes == nil {
		return nil, ErrNoRoutes
	}

	gen := NewSchemaGenerator()
	doc := &Document{
		OpenAPI:      Version,
		Info:         s.info,
		Servers:      s.servers,
		Paths:        make(map[string]*PathItem),
		Security:     s.security,
		ExternalDocs: s.externalDocs,
	}

	operationIDs := make(map[string]string)

	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.Contains(route, "*") {
			return nil
		}

		builder, ok := s.operations[operationKey(method, route)]
		if !ok {
			return nil
		}

		if id := builder.operationID; id != "" {
			if prev, dup := operationIDs[id]; dup {
				return fmt.Errorf("%w: %q used by %s and %s %s", ErrDuplicateOperationID, id, prev, method, route)
			}
			operationIDs[id] = method + " " + route
		}

		openAPIPath, pathParams := parsePath(route)

		pathItem, ok := doc.Paths[openAPIPath]
		if !ok {
			pathItem = &PathItem{}
			doc.Paths[openAPIPath] = pathItem
		}

		assignOperation(pathItem, method, builder.buildOperation(gen, pathParams))
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc.Components = s.buildComponents(gen)
	doc.Tags = s.mergeTags(doc.Paths)

	return doc, nil
}

func (s *Spec) buildComponents(gen *SchemaGenerator) *Components {
	schemas := gen.Schemas()
	if len(schemas) == 0 && len(s.securitySchemes) == 0 {
		return nil
	}

	comp := &Components{}
	if len(schemas) > 0 {
		comp.Schemas = schemas
	}
	if len(s.securitySchemes) > 0 {
		comp.SecuritySchemes = s.securitySchemes
	}
	return comp
}

// mergeTags combines tags collected from operations with user-defined tags.
// User-defined tags keep their description and external docs. The result is
// sorted by name.
func (s *Spec) mergeTags(paths map[string]*PathItem) []Tag {
	userTags := make(map[string]Tag, len(s.tags))
	for _, tag := range s.tags {
		userTags[tag.Name] = tag
	}

	seen := make(map[string]bool)
	var tags []Tag

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if tag, ok := userTags[name]; ok {
			tags = append(tags, tag)
			return
		}
		tags = append(tags, Tag{Name: name})
	}

	for _, item := range paths {
		for _, op := range item.Operations() {
			for _, name := range op.Tags {
				add(name)
			}
		}
	}
	for _, tag := range s.tags {
		add(tag.Name)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	return tags
}

func assignOperation(pathItem *PathItem, method string, op *Operation) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		pathItem.Get = op
	case http.MethodPost:
		pathItem.Post = op
	case http.MethodPut:
		pathItem.Put = op
	case http.MethodDelete:
		pathItem.Delete = op
	case http.MethodPatch:
		pathItem.Patch = op
	case http.MethodHead:
		pathItem.Head = op
	case http.MethodOptions:
		pathItem.Options = op
	case http.MethodTrace:
		pathItem.Trace = op
	}
}

// parsePath converts a chi pattern to OpenAPI form and returns one required
// string path parameter per route variable:
//
//	"/users/{id:[0-9]+}" -> "/users/{id}"
func parsePath(pattern string) (string, []*Parameter) {
	var params []*Parameter

	openAPIPath := pathVarRegexp.ReplaceAllStringFunc(pattern, func(match string) string {
		name, _, _ := strings.Cut(match[1:len(match)-1], ":")
		params = append(params, &Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   &Schema{Type: "string"},
		})
		return "{" + name + "}"
	})

	return openAPIPath, params
}
