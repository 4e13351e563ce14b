package swaggerui

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
)

const (
	defaultCDN   = "https://unpkg.com/swagger-ui-dist@5"
	defaultTitle = "Swagger UI"
)

// Options configures the Swagger UI page and the document endpoints.
type Options struct {
	// Explorer shows the top bar with the document URL input.
	Explorer bool

	// JSONDocumentURL is the route serving the document as JSON
	// (default: "<path>.json"). Set to "-" to disable.
	JSONDocumentURL string

	// YAMLDocumentURL is the route serving the document as YAML
	// (default: "<path>.yaml"). Set to "-" to disable.
	YAMLDocumentURL string

	// CustomCSS is inlined in a style element after the Swagger UI stylesheet.
	CustomCSS string

	// CustomSiteTitle overrides the HTML page title (default: document title).
	CustomSiteTitle string

	// SwaggerOptions are extra SwaggerUIBundle configuration properties,
	// rendered sorted by key. For example {"docExpansion": "none"}.
	//
	// See: https://swagger.io/docs/open-source-tools/swagger-ui/usage/configuration/
	SwaggerOptions map[string]any
}

// OptionsFromMap converts a loosely typed option map into Options. The keys
// explorer, jsonDocumentUrl, yamlDocumentUrl, customCss and customSiteTitle
// map to the matching fields. A nested "swaggerOptions" map and every other
// key become SwaggerUIBundle properties; nested values win on conflict.
func OptionsFromMap(m map[string]any) (Options, error) {
	opts := Options{SwaggerOptions: make(map[string]any)}
	var nested map[string]any

	for key, value := range m {
		var err error
		switch key {
		case "explorer":
			opts.Explorer, err = asBool(key, value)
		case "jsonDocumentUrl":
			opts.JSONDocumentURL, err = asString(key, value)
		case "yamlDocumentUrl":
			opts.YAMLDocumentURL, err = asString(key, value)
		case "customCss":
			opts.CustomCSS, err = asString(key, value)
		case "customSiteTitle":
			opts.CustomSiteTitle, err = asString(key, value)
		case "swaggerOptions":
			var ok bool
			if nested, ok = value.(map[string]any); !ok && value != nil {
				err = fmt.Errorf("%w: %s must be a map, got %T", ErrInvalidOption, key, value)
			}
		default:
			opts.SwaggerOptions[key] = value
		}
		if err != nil {
			return Options{}, err
		}
	}

	for k, v := range nested {
		opts.SwaggerOptions[k] = v
	}
	if len(opts.SwaggerOptions) == 0 {
		opts.SwaggerOptions = nil
	}

	return opts, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok && v != nil {
		return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidOption, key, v)
	}
	return b, nil
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok && v != nil {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, v)
	}
	return s, nil
}

// Setup serves Swagger UI for doc on the application's router:
//
//	<path>, <path>/        - interactive HTML docs
//	<JSONDocumentURL>      - document as JSON
//	<YAMLDocumentURL>      - document as YAML
//
// Document URLs without a leading slash are resolved from the root. The
// document and page are serialized here, so encoding failures are
// reported by Setup rather than on the first request.
func Setup(path string, application app.Application, doc *openapi.Document, opts Options) error {
	router, err := resolveRouter(application)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNoDocument
	}

	basePath := normalizePath(path)
	if basePath == "/" {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	jsonURL := documentURL(opts.JSONDocumentURL, basePath+".json")
	yamlURL := documentURL(opts.YAMLDocumentURL, basePath+".yaml")

	var routes []route

	if jsonURL != "" {
		data, err := doc.EncodeJSON()
		if err != nil {
			return fmt.Errorf("swaggerui: encode JSON document: %w", err)
		}
		routes = append(routes, route{jsonURL, staticHandler("application/json", data)})
	}

	if yamlURL != "" {
		data, err := doc.EncodeYAML()
		if err != nil {
			return fmt.Errorf("swaggerui: encode YAML document: %w", err)
		}
		routes = append(routes, route{yamlURL, staticHandler("application/x-yaml", data)})
	}

	specURL := jsonURL
	if specURL == "" {
		specURL = yamlURL
	}

	title := opts.CustomSiteTitle
	if title == "" {
		title = doc.Info.Title
	}
	if title == "" {
		title = defaultTitle
	}

	page, err := renderPage(title, specURL, doc, opts)
	if err != nil {
		return err
	}
	docs := staticHandler("text/html; charset=utf-8", page)
	routes = append(routes, route{basePath, docs}, route{basePath + "/", docs})

	for _, rt := range routes {
		router.Handle(rt.pattern, rt.handler)
	}

	return nil
}

type route struct {
	pattern string
	handler http.Handler
}

func resolveRouter(application app.Application) (app.Router, error) {
	if application == nil {
		return nil, ErrNoRouter
	}
	adapter := application.HTTPAdapter()
	if adapter == nil {
		return nil, ErrNoRouter
	}
	router, ok := adapter.Instance().(app.Router)
	if !ok || router == nil {
		return nil, ErrNoRouter
	}
	return router, nil
}

func normalizePath(path string) string {
	return "/" + strings.Trim(path, "/")
}

// documentURL returns the route for a document endpoint, or "" when
// disabled with "-".
func documentURL(configured, fallback string) string {
	switch configured {
	case "-":
		return ""
	case "":
		return fallback
	}
	return "/" + strings.TrimLeft(configured, "/")
}

func staticHandler(contentType string, body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func renderPage(title, specURL string, doc *openapi.Document, opts Options) ([]byte, error) {
	var source string
	if specURL != "" {
		url, err := json.Marshal(specURL)
		if err != nil {
			return nil, fmt.Errorf("swaggerui: encode document URL: %w", err)
		}
		source = "url: " + string(url)
	} else {
		spec, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("swaggerui: encode inline document: %w", err)
		}
		source = "spec: " + string(spec)
	}

	extra, err := bundleOptions(opts.SwaggerOptions)
	if err != nil {
		return nil, err
	}

	layout := `layout: "BaseLayout"`
	presets := "presets: [SwaggerUIBundle.presets.apis]"
	standalone := ""
	if opts.Explorer {
		layout = `layout: "StandaloneLayout"`
		presets = "presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset]"
		standalone = fmt.Sprintf("\n<script src=\"%s/swagger-ui-standalone-preset.js\"></script>", defaultCDN)
	}

	var style string
	if opts.CustomCSS != "" {
		style = "\n<style>\n" + strings.ReplaceAll(opts.CustomCSS, "</", `<\/`) + "\n</style>"
	}

	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="%s/swagger-ui.css">%s
</head>
<body>
<div id="swagger-ui"></div>
<script src="%s/swagger-ui-bundle.js"></script>%s
<script>
window.ui = SwaggerUIBundle({%s, dom_id: "#swagger-ui", %s, %s%s});
</script>
</body>
</html>`, html.EscapeString(title), defaultCDN, style, defaultCDN, standalone, source, presets, layout, extra)), nil
}

// bundleOptions renders extra SwaggerUIBundle properties as
// `, "key": value` pairs sorted by key.
func bundleOptions(config map[string]any) (string, error) {
	if len(config) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		key, err := json.Marshal(k)
		if err != nil {
			return "", fmt.Errorf("swaggerui: encode option key %q: %w", k, err)
		}
		value, err := json.Marshal(config[k])
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrInvalidOption, k, err)
		}
		fmt.Fprintf(&buf, ", %s: %s", key, value)
	}
	return buf.String(), nil
}
