package docs

import (
	"fmt"

	"github.com/vitalvas/docmount/theme"
)

// Provider selects the documentation UI.
type Provider string

const (
	ProviderSwaggerUI Provider = "swagger-ui"
	ProviderScalar    Provider = "scalar"
)

// Valid reports whether p is a known provider. The empty provider is valid
// and selects the default.
func (p Provider) Valid() bool {
	switch p {
	case "", ProviderSwaggerUI, ProviderScalar:
		return true
	}
	return false
}

const (
	DefaultPath     = "api/docs"
	DefaultVersion  = "1.0"
	DefaultProvider = ProviderSwaggerUI
)

// Options configures a documentation mount. Exactly one of SwaggerUI and
// Scalar may be set and it must match Provider; NewOptions and the With*
// helpers keep the two in step.
type Options struct {
	// Path is the mount path (default: "api/docs").
	Path string `yaml:"path,omitempty" json:"path,omitempty"`

	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string      `yaml:"version,omitempty" json:"version,omitempty"`
	Auth        *AuthConfig `yaml:"auth,omitempty" json:"auth,omitempty"`

	// Provider is the UI discriminant (default: swagger-ui).
	Provider Provider `yaml:"ui,omitempty" json:"ui,omitempty"`

	SwaggerUI *SwaggerUIOptions `yaml:"swaggerUI,omitempty" json:"swaggerUI,omitempty"`
	Scalar    *ScalarOptions    `yaml:"scalar,omitempty" json:"scalar,omitempty"`
}

// SwaggerUIOptions are the options of the swagger-ui provider.
type SwaggerUIOptions struct {
	Theme theme.Name `yaml:"theme,omitempty" json:"theme,omitempty"`

	// SwaggerOptions are merged over the mount defaults and passed to the
	// renderer, e.g. {"docExpansion": "none"} or {"customSiteTitle": "API"}.
	SwaggerOptions map[string]any `yaml:"swaggerOptions,omitempty" json:"swaggerOptions,omitempty"`
}

// ScalarOptions are the options of the scalar provider.
type ScalarOptions struct {
	// Theme is a Scalar theme name such as "purple" or "moon". It is passed
	// through to the renderer unchecked.
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`

	// ScalarOptions are merged over the renderer configuration; keys here win.
	ScalarOptions map[string]any `yaml:"scalarOptions,omitempty" json:"scalarOptions,omitempty"`
}

// Option customizes Options built by NewOptions.
type Option func(*Options)

// NewOptions returns validated Options for the given title. Options are
// applied in order, so the last provider option wins.
//
//	opts, err := docs.NewOptions("Items API",
//	    docs.WithVersion("2.0"),
//	    docs.WithScalar(docs.ScalarOptions{Theme: "purple"}),
//	)
func NewOptions(title string, opts ...Option) (Options, error) {
	o := Options{Title: title}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// WithPath sets the mount path.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDescription sets the document description.
func WithDescription(description string) Option {
	return func(o *Options) {
		o.Description = description
	}
}

// WithVersion sets the document version.
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithAuth sets the security schemes added to the document.
func WithAuth(auth AuthConfig) Option {
	return func(o *Options) {
		o.Auth = &auth
	}
}

// WithSwaggerUI selects the swagger-ui provider with the given options.
func WithSwaggerUI(swaggerUI SwaggerUIOptions) Option {
	return func(o *Options) {
		o.Provider = ProviderSwaggerUI
		o.SwaggerUI = &swaggerUI
		o.Scalar = nil
	}
}

// WithScalar selects the scalar provider with the given options.
func WithScalar(scalar ScalarOptions) Option {
	return func(o *Options) {
		o.Provider = ProviderScalar
		o.Scalar = &scalar
		o.SwaggerUI = nil
	}
}

// Validate reports every violation of o in a single *ConfigurationError.
func (o Options) Validate() error {
	var errs []error

	if o.Title == "" {
		errs = append(errs, ErrTitleRequired)
	}

	if !o.Provider.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownUI, o.Provider))
	}

	switch {
	case o.SwaggerUI != nil && o.Scalar != nil:
		errs = append(errs, ErrConflictingOptions)
	case o.Scalar != nil && o.provider() != ProviderScalar:
		errs = append(errs, fmt.Errorf("%w: scalar options with ui %q", ErrOptionsMismatch, o.provider()))
	case o.SwaggerUI != nil && o.provider() != ProviderSwaggerUI:
		errs = append(errs, fmt.Errorf("%w: swaggerUI options with ui %q", ErrOptionsMismatch, o.provider()))
	}

	if o.SwaggerUI != nil && o.SwaggerUI.Theme != "" && !o.SwaggerUI.Theme.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownTheme, o.SwaggerUI.Theme))
	}

	if o.Auth != nil {
		errs = append(errs, o.Auth.validate()...)
	}

	return configError(errs...)
}

// WithDefaults returns a copy of o with the default path, version and
// provider filled in.
func (o Options) WithDefaults() Options {
	o.Path = o.path()
	o.Provider = o.provider()
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	return o
}

func (o Options) path() string {
	if o.Path == "" {
		return DefaultPath
	}
	return o.Path
}

func (o Options) provider() Provider {
	if o.Provider == "" {
		return DefaultProvider
	}
	return o.Provider
}
