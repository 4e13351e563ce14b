package scalar

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"sync"

	"github.com/vitalvas/docmount/openapi"
)

// DefaultCDN is the script URL of the Scalar API reference bundle.
const DefaultCDN = "https://cdn.jsdelivr.net/npm/@scalar/api-reference"

const defaultTitle = "API Reference"

// Handler returns a handler serving the Scalar API reference page for the
// given configuration. The configuration is passed to
// Scalar.createApiReference as JSON; the document itself is expected under
// the "content" key. Two keys are interpreted by the handler instead:
//
//	"cdn"       - script URL of the bundle (default: DefaultCDN)
//	"pageTitle" - HTML page title (default: metaData.title, then the document title)
//
// The page is rendered on the first request and cached.
//
// See: https://github.com/scalar/scalar/blob/main/documentation/configuration.md
func Handler(config map[string]any) http.Handler {
	cfg := make(map[string]any, len(config))
	for k, v := range config {
		cfg[k] = v
	}

	var (
		once      sync.Once
		page      []byte
		renderErr error
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		once.Do(func() {
			page, renderErr = render(cfg)
		})
		if renderErr != nil {
			http.Error(w, "failed to render API reference", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	})
}

func render(cfg map[string]any) ([]byte, error) {
	cdn, _ := cfg["cdn"].(string)
	if cdn == "" {
		cdn = DefaultCDN
	}
	title := pageTitle(cfg)

	js := make(map[string]any, len(cfg))
	for k, v := range cfg {
		if k == "cdn" || k == "pageTitle" {
			continue
		}
		js[k] = v
	}

	// json.Marshal escapes <, > and &, so the payload cannot close the
	// surrounding script element.
	payload, err := json.Marshal(js)
	if err != nil {
		return nil, fmt.Errorf("scalar: encode configuration: %w", err)
	}

	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<div id="app"></div>
<script src="%s"></script>
<script>
Scalar.createApiReference("#app", %s);
</script>
</body>
</html>`, html.EscapeString(title), html.EscapeString(cdn), payload)), nil
}

func pageTitle(cfg map[string]any) string {
	if title, ok := cfg["pageTitle"].(string); ok && title != "" {
		return title
	}
	if meta, ok := cfg["metaData"].(map[string]any); ok {
		if title, ok := meta["title"].(string); ok && title != "" {
			return title
		}
	}
	switch doc := cfg["content"].(type) {
	case *openapi.Document:
		if doc != nil && doc.Info.Title != "" {
			return doc.Info.Title
		}
	case openapi.Document:
		if doc.Info.Title != "" {
			return doc.Info.Title
		}
	}
	return defaultTitle
}
