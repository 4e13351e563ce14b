package docs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/openapi"
	"github.com/vitalvas/docmount/theme"
)

func newTestDispatcher(builder *recordingBuilder, swagger, scalar *recordingMounter, opts ...DispatcherOption) *Dispatcher {
	opts = append([]DispatcherOption{
		WithBuilder(builder),
		WithMount(ProviderSwaggerUI, swagger),
		WithMount(ProviderScalar, scalar),
	}, opts...)
	return NewDispatcher(opts...)
}

func TestDispatcherSetup(t *testing.T) {
	t.Run("nil application", func(t *testing.T) {
		builder := &recordingBuilder{doc: testDocument()}
		d := newTestDispatcher(builder, &recordingMounter{}, &recordingMounter{})

		for _, application := range []app.Application{nil, (*app.App)(nil), (*fakeApp)(nil)} {
			err := d.Setup(application, Options{Title: "x"})

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.ErrorIs(t, err, ErrNoApplication)
		}
		assert.Zero(t, builder.calls)
	})

	t.Run("invalid options stop before the builder", func(t *testing.T) {
		builder := &recordingBuilder{doc: testDocument()}
		swagger, scalar := &recordingMounter{}, &recordingMounter{}
		d := newTestDispatcher(builder, swagger, scalar)

		for _, opts := range []Options{
			{},
			{Title: "x", SwaggerUI: &SwaggerUIOptions{}, Scalar: &ScalarOptions{}},
			{Title: "x", Provider: ProviderScalar, SwaggerUI: &SwaggerUIOptions{Theme: theme.Dracula}},
		} {
			var cfgErr *ConfigurationError
			assert.ErrorAs(t, d.Setup(appWith(&recordingRouter{}), opts), &cfgErr)
		}

		assert.Zero(t, builder.calls)
		assert.Zero(t, swagger.calls)
		assert.Zero(t, scalar.calls)
	})

	t.Run("default provider is swagger ui", func(t *testing.T) {
		doc := testDocument()
		builder := &recordingBuilder{doc: doc}
		swagger, scalar := &recordingMounter{}, &recordingMounter{}
		d := newTestDispatcher(builder, swagger, scalar)
		application := appWith(&recordingRouter{})

		require.NoError(t, d.Setup(application, Options{Title: "Items API"}))

		assert.Equal(t, 1, builder.calls)
		assert.Equal(t, 1, swagger.calls)
		assert.Zero(t, scalar.calls)
		assert.Same(t, doc, swagger.doc)
		assert.Same(t, application, swagger.application)
		assert.Equal(t, "Items API", swagger.opts.Title)
	})

	t.Run("scalar provider", func(t *testing.T) {
		doc := testDocument()
		builder := &recordingBuilder{doc: doc}
		swagger, scalar := &recordingMounter{}, &recordingMounter{}
		d := newTestDispatcher(builder, swagger, scalar)

		opts, err := NewOptions("Items API", WithScalar(ScalarOptions{Theme: "purple"}))
		require.NoError(t, err)
		require.NoError(t, d.Setup(appWith(&recordingRouter{}), opts))

		assert.Zero(t, swagger.calls)
		assert.Equal(t, 1, scalar.calls)
		assert.Same(t, doc, scalar.doc)
		assert.Equal(t, opts, scalar.opts)
	})

	t.Run("document is regenerated per call", func(t *testing.T) {
		builder := &recordingBuilder{doc: testDocument()}
		swagger := &recordingMounter{}
		d := newTestDispatcher(builder, swagger, &recordingMounter{})

		require.NoError(t, d.Setup(appWith(&recordingRouter{}), Options{Title: "x"}))
		require.NoError(t, d.Setup(appWith(&recordingRouter{}), Options{Title: "x"}))

		assert.Equal(t, 2, builder.calls)
		assert.Equal(t, 2, swagger.calls)
	})

	t.Run("builder error is returned unchanged", func(t *testing.T) {
		errBuild := errors.New("route walk failed")
		swagger := &recordingMounter{}
		d := newTestDispatcher(&recordingBuilder{err: errBuild}, swagger, &recordingMounter{})

		err := d.Setup(appWith(&recordingRouter{}), Options{Title: "x"})

		assert.Same(t, errBuild, err)
		assert.Zero(t, swagger.calls)
	})

	t.Run("mount error is returned unchanged", func(t *testing.T) {
		errMount := errors.New("mount failed")
		d := newTestDispatcher(&recordingBuilder{doc: testDocument()}, &recordingMounter{err: errMount}, &recordingMounter{})

		assert.Same(t, errMount, d.Setup(appWith(&recordingRouter{}), Options{Title: "x"}))
	})

	t.Run("provider without mount", func(t *testing.T) {
		builder := &recordingBuilder{doc: testDocument()}
		d := newTestDispatcher(builder, &recordingMounter{}, &recordingMounter{},
			WithMount(ProviderScalar, nil))

		err := d.Setup(appWith(&recordingRouter{}), Options{Title: "x", Provider: ProviderScalar})

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.ErrorIs(t, err, ErrNoMount)
		assert.Zero(t, builder.calls)
	})

	t.Run("logs mount at debug level", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		d := newTestDispatcher(&recordingBuilder{doc: testDocument()}, &recordingMounter{}, &recordingMounter{},
			WithLogger(zap.New(core)))

		require.NoError(t, d.Setup(appWith(&recordingRouter{}), Options{Title: "x", Path: "reference"}))

		entries := logs.FilterMessage("mounting api docs").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "swagger-ui", fields["provider"])
		assert.Equal(t, "reference", fields["path"])
	})
}

func TestSetup(t *testing.T) {
	type item struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	newApp := func() *app.App {
		a := app.New()
		a.Handle(http.MethodGet, "/items", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}).OperationID("listItems").Summary("List items").Response(http.StatusOK, []item{})
		return a
	}

	get := func(h http.Handler, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("swagger ui with theme and auth", func(t *testing.T) {
		a := newApp()
		opts, err := NewOptions("Items API",
			WithDescription("Item store"),
			WithAuth(AuthConfig{Bearer: &BearerAuth{}, Global: true}),
			WithSwaggerUI(SwaggerUIOptions{Theme: theme.Monokai}),
		)
		require.NoError(t, err)
		require.NoError(t, Setup(a, opts))

		page := get(a, "/api/docs")
		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), `url: "/api/docs.json"`)
		assert.Contains(t, page.Body.String(), "StandaloneLayout")
		assert.Contains(t, page.Body.String(), theme.Base())

		res := get(a, "/api/docs.json")
		require.Equal(t, http.StatusOK, res.Code)

		var doc openapi.Document
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &doc))
		assert.Equal(t, "Items API", doc.Info.Title)
		assert.Equal(t, "Item store", doc.Info.Description)
		assert.Equal(t, DefaultVersion, doc.Info.Version)
		require.Contains(t, doc.Paths, "/items")
		assert.Equal(t, "listItems", doc.Paths["/items"].Get.OperationID)
		require.NotNil(t, doc.Components)
		assert.Equal(t, "bearer", doc.Components.SecuritySchemes["bearer"].Scheme)
		assert.Equal(t, []openapi.SecurityRequirement{{"bearer": {}}}, doc.Security)

		assert.NotContains(t, doc.Paths, "/api/docs")
	})

	t.Run("scalar", func(t *testing.T) {
		a := newApp()
		opts, err := NewOptions("Items API", WithPath("reference"), WithScalar(ScalarOptions{Theme: "moon"}))
		require.NoError(t, err)
		require.NoError(t, Setup(a, opts))

		for _, path := range []string{"/reference", "/reference/"} {
			res := get(a, path)
			require.Equal(t, http.StatusOK, res.Code, path)
			assert.Contains(t, res.Body.String(), `Scalar.createApiReference("#app", `)
			assert.Contains(t, res.Body.String(), `"theme":"moon"`)
			assert.Contains(t, res.Body.String(), `"operationId":"listItems"`)
		}
	})

	t.Run("setup does not change the application registry", func(t *testing.T) {
		a := newApp()
		opts, err := NewOptions("Items API", WithAuth(AuthConfig{Basic: &BasicAuth{}}))
		require.NoError(t, err)
		require.NoError(t, Setup(a, opts))

		doc, err := a.Spec().Build(a.Routes())
		require.NoError(t, err)
		assert.Empty(t, doc.Info.Title)
		if doc.Components != nil {
			assert.Empty(t, doc.Components.SecuritySchemes)
		}
	})

	t.Run("application without route source", func(t *testing.T) {
		err := Setup(appWith(&recordingRouter{}), Options{Title: "x"})
		assert.ErrorIs(t, err, openapi.ErrNoRoutes)
	})
}
