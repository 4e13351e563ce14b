package scalar

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/docmount/openapi"
)

func serve(h http.Handler, method string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, "/reference", nil))
	return w
}

func TestHandler(t *testing.T) {
	doc := &openapi.Document{OpenAPI: "3.1.0", Info: openapi.Info{Title: "Pets <API>", Version: "1.0"}}

	t.Run("renders page with embedded document", func(t *testing.T) {
		w := serve(Handler(map[string]any{"content": doc, "theme": "purple"}), http.MethodGet)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

		body := w.Body.String()
		assert.Contains(t, body, `Scalar.createApiReference("#app", `)
		assert.Contains(t, body, `"theme":"purple"`)
		assert.Contains(t, body, `"openapi":"3.1.0"`)
		assert.Contains(t, body, DefaultCDN)
	})

	t.Run("title falls back to document title and is escaped", func(t *testing.T) {
		body := serve(Handler(map[string]any{"content": doc}), http.MethodGet).Body.String()

		assert.Contains(t, body, "<title>Pets &lt;API&gt;</title>")
		assert.NotContains(t, body, "Pets <API>")
	})

	t.Run("title from metaData", func(t *testing.T) {
		h := Handler(map[string]any{
			"content":  doc,
			"metaData": map[string]any{"title": "Reference"},
		})
		assert.Contains(t, serve(h, http.MethodGet).Body.String(), "<title>Reference</title>")
	})

	t.Run("pageTitle and cdn are not forwarded", func(t *testing.T) {
		body := serve(Handler(map[string]any{
			"content":   doc,
			"pageTitle": "Custom",
			"cdn":       "https://example.com/scalar.js",
		}), http.MethodGet).Body.String()

		assert.Contains(t, body, "<title>Custom</title>")
		assert.Contains(t, body, `<script src="https://example.com/scalar.js"></script>`)
		assert.NotContains(t, body, `"pageTitle"`)
		assert.NotContains(t, body, `"cdn"`)
	})

	t.Run("default title without document", func(t *testing.T) {
		body := serve(Handler(map[string]any{}), http.MethodGet).Body.String()
		assert.Contains(t, body, "<title>API Reference</title>")
	})

	t.Run("script content cannot break out", func(t *testing.T) {
		body := serve(Handler(map[string]any{"description": "</script><script>alert(1)</script>"}), http.MethodGet).Body.String()

		assert.Equal(t, 2, strings.Count(body, "</script>"))
		assert.Contains(t, body, `\u003c/script\u003e`)
	})

	t.Run("non-serializable configuration", func(t *testing.T) {
		w := serve(Handler(map[string]any{"bad": make(chan int)}), http.MethodGet)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := serve(Handler(map[string]any{"content": doc}), http.MethodPost)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
	})

	t.Run("config copied at construction", func(t *testing.T) {
		cfg := map[string]any{"theme": "moon"}
		h := Handler(cfg)
		cfg["theme"] = "mars"

		body := serve(h, http.MethodGet).Body.String()
		require.Contains(t, body, `"theme":"moon"`)
	})
}
