package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/docmount/openapi"
	"github.com/vitalvas/docmount/theme"
)

func TestNewOptions(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		opts, err := NewOptions("Items API")
		require.NoError(t, err)

		assert.Equal(t, Options{Title: "Items API"}, opts)
	})

	t.Run("all options", func(t *testing.T) {
		opts, err := NewOptions("Items API",
			WithPath("reference"),
			WithDescription("Item store"),
			WithVersion("2.0"),
			WithAuth(AuthConfig{Bearer: &BearerAuth{}}),
			WithSwaggerUI(SwaggerUIOptions{Theme: theme.NordDark}),
		)
		require.NoError(t, err)

		assert.Equal(t, "reference", opts.Path)
		assert.Equal(t, "Item store", opts.Description)
		assert.Equal(t, "2.0", opts.Version)
		assert.NotNil(t, opts.Auth.Bearer)
		assert.Equal(t, ProviderSwaggerUI, opts.Provider)
		assert.Equal(t, theme.NordDark, opts.SwaggerUI.Theme)
	})

	t.Run("last provider wins", func(t *testing.T) {
		opts, err := NewOptions("Items API",
			WithSwaggerUI(SwaggerUIOptions{Theme: theme.Dracula}),
			WithScalar(ScalarOptions{Theme: "purple"}),
		)
		require.NoError(t, err)

		assert.Equal(t, ProviderScalar, opts.Provider)
		assert.Nil(t, opts.SwaggerUI)
		assert.Equal(t, "purple", opts.Scalar.Theme)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := NewOptions("")

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"valid default", Options{Title: "x"}, nil},
		{"valid swagger bag without discriminant", Options{Title: "x", SwaggerUI: &SwaggerUIOptions{}}, nil},
		{"valid scalar", Options{Title: "x", Provider: ProviderScalar, Scalar: &ScalarOptions{}}, nil},
		{"missing title", Options{}, ErrTitleRequired},
		{"unknown provider", Options{Title: "x", Provider: "redoc"}, ErrUnknownUI},
		{"both bags", Options{Title: "x", SwaggerUI: &SwaggerUIOptions{}, Scalar: &ScalarOptions{}}, ErrConflictingOptions},
		{"scalar bag with default provider", Options{Title: "x", Scalar: &ScalarOptions{}}, ErrOptionsMismatch},
		{"swagger bag with scalar provider", Options{Title: "x", Provider: ProviderScalar, SwaggerUI: &SwaggerUIOptions{}}, ErrOptionsMismatch},
		{"unknown theme", Options{Title: "x", SwaggerUI: &SwaggerUIOptions{Theme: "solarized"}}, ErrUnknownTheme},
		{"bad api key location", Options{Title: "x", Auth: &AuthConfig{APIKey: &APIKeyAuth{In: "body"}}}, ErrInvalidAuth},
		{"duplicate scheme names", Options{Title: "x", Auth: &AuthConfig{
			Bearer: &BearerAuth{Name: "token"},
			APIKey: &APIKeyAuth{Name: "token"},
		}}, ErrInvalidAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("collects every violation", func(t *testing.T) {
		err := Options{Provider: "redoc"}.Validate()

		assert.ErrorIs(t, err, ErrTitleRequired)
		assert.ErrorIs(t, err, ErrUnknownUI)
	})
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{Title: "x"}.WithDefaults()
	assert.Equal(t, DefaultPath, opts.Path)
	assert.Equal(t, DefaultVersion, opts.Version)
	assert.Equal(t, ProviderSwaggerUI, opts.Provider)

	opts = Options{Title: "x", Path: "/ref", Version: "3", Provider: ProviderScalar}.WithDefaults()
	assert.Equal(t, "/ref", opts.Path)
	assert.Equal(t, "3", opts.Version)
	assert.Equal(t, ProviderScalar, opts.Provider)
}

func TestAuthConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		auth := AuthConfig{Bearer: &BearerAuth{}, Basic: &BasicAuth{}, APIKey: &APIKeyAuth{}}

		assert.Equal(t, map[string]*openapi.SecurityScheme{
			"bearer":  {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
			"basic":   {Type: "http", Scheme: "basic"},
			"api_key": {Type: "apiKey", In: "header", Name: "X-API-Key"},
		}, auth.SecuritySchemes())
		assert.Nil(t, auth.Requirements())
	})

	t.Run("custom names", func(t *testing.T) {
		auth := AuthConfig{
			Bearer: &BearerAuth{Name: "jwt", BearerFormat: "opaque", Description: "Access token"},
			APIKey: &APIKeyAuth{Name: "key", In: "query", KeyName: "token"},
		}

		schemes := auth.SecuritySchemes()
		assert.Equal(t, "opaque", schemes["jwt"].BearerFormat)
		assert.Equal(t, "Access token", schemes["jwt"].Description)
		assert.Equal(t, "query", schemes["key"].In)
		assert.Equal(t, "token", schemes["key"].Name)
	})

	t.Run("global requirements sorted by name", func(t *testing.T) {
		auth := AuthConfig{Bearer: &BearerAuth{}, APIKey: &APIKeyAuth{}, Global: true}

		assert.Equal(t, []openapi.SecurityRequirement{
			{"api_key": {}},
			{"bearer": {}},
		}, auth.Requirements())
	})
}
