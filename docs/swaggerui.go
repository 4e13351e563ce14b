package docs

import (
	"strings"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
	"github.com/vitalvas/docmount/swaggerui"
	"github.com/vitalvas/docmount/theme"
)

// SwaggerUIMount serves Swagger UI with the explorer bar enabled and the
// JSON document at "<path>.json", with surrounding slashes trimmed from
// path so the JSON and YAML routes share one base. Caller swaggerOptions override these
// defaults; a theme sets customCss.
type SwaggerUIMount struct {
	// Setup mounts the rendered UI (default: swaggerui.Setup).
	Setup func(path string, application app.Application, doc *openapi.Document, opts swaggerui.Options) error
}

func (m SwaggerUIMount) Mount(application app.Application, doc *openapi.Document, opts Options) error {
	path := opts.path()

	merged := map[string]any{
		"explorer":        true,
		"jsonDocumentUrl": strings.Trim(path, "/") + ".json",
	}

	var themeName theme.Name
	if opts.SwaggerUI != nil {
		for k, v := range opts.SwaggerUI.SwaggerOptions {
			merged[k] = v
		}
		themeName = opts.SwaggerUI.Theme
	}

	rendering, err := swaggerui.OptionsFromMap(merged)
	if err != nil {
		return err
	}
	if themeName != "" {
		rendering.CustomCSS = theme.CSS(themeName)
	}

	setup := m.Setup
	if setup == nil {
		setup = swaggerui.Setup
	}
	return setup(path, application, doc, rendering)
}
