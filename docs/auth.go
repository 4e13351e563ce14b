package docs

import (
	"fmt"
	"sort"

	"github.com/vitalvas/docmount/openapi"
)

// AuthConfig declares the security schemes of the generated document.
type AuthConfig struct {
	Bearer *BearerAuth `yaml:"bearer,omitempty" json:"bearer,omitempty"`
	Basic  *BasicAuth  `yaml:"basic,omitempty" json:"basic,omitempty"`
	APIKey *APIKeyAuth `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`

	// Global requires every configured scheme at document level.
	Global bool `yaml:"global,omitempty" json:"global,omitempty"`
}

// BearerAuth is an HTTP bearer scheme.
type BearerAuth struct {
	Name         string `yaml:"name,omitempty" json:"name,omitempty"`                 // default "bearer"
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"` // default "JWT"
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
}

// BasicAuth is an HTTP basic scheme.
type BasicAuth struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"` // default "basic"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// APIKeyAuth is an API key passed in a header, query parameter or cookie.
type APIKeyAuth struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`       // default "api_key"
	In          string `yaml:"in,omitempty" json:"in,omitempty"`           // default "header"
	KeyName     string `yaml:"keyName,omitempty" json:"keyName,omitempty"` // default "X-API-Key"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

func (a AuthConfig) validate() []error {
	var errs []error

	if a.APIKey != nil {
		switch a.APIKey.In {
		case "", "header", "query", "cookie":
		default:
			errs = append(errs, fmt.Errorf("%w: apiKey.in must be header, query or cookie, got %q", ErrInvalidAuth, a.APIKey.In))
		}
	}

	seen := make(map[string]bool)
	for _, name := range a.names() {
		if seen[name] {
			errs = append(errs, fmt.Errorf("%w: duplicate scheme name %q", ErrInvalidAuth, name))
		}
		seen[name] = true
	}

	return errs
}

func (a AuthConfig) names() []string {
	var names []string
	if a.Bearer != nil {
		names = append(names, orDefault(a.Bearer.Name, "bearer"))
	}
	if a.Basic != nil {
		names = append(names, orDefault(a.Basic.Name, "basic"))
	}
	if a.APIKey != nil {
		names = append(names, orDefault(a.APIKey.Name, "api_key"))
	}
	return names
}

// SecuritySchemes returns the configured schemes keyed by name with
// defaults applied.
func (a AuthConfig) SecuritySchemes() map[string]*openapi.SecurityScheme {
	schemes := make(map[string]*openapi.SecurityScheme)

	if b := a.Bearer; b != nil {
		schemes[orDefault(b.Name, "bearer")] = &openapi.SecurityScheme{
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: orDefault(b.BearerFormat, "JWT"),
			Description:  b.Description,
		}
	}

	if b := a.Basic; b != nil {
		schemes[orDefault(b.Name, "basic")] = &openapi.SecurityScheme{
			Type:        "http",
			Scheme:      "basic",
			Description: b.Description,
		}
	}

	if k := a.APIKey; k != nil {
		schemes[orDefault(k.Name, "api_key")] = &openapi.SecurityScheme{
			Type:        "apiKey",
			In:          orDefault(k.In, "header"),
			Name:        orDefault(k.KeyName, "X-API-Key"),
			Description: k.Description,
		}
	}

	return schemes
}

// Requirements returns one document-level requirement per scheme when
// Global is set. Any of the schemes satisfies the document.
func (a AuthConfig) Requirements() []openapi.SecurityRequirement {
	if !a.Global {
		return nil
	}

	names := a.names()
	sort.Strings(names)

	reqs := make([]openapi.SecurityRequirement, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, openapi.SecurityRequirement{name: {}})
	}
	return reqs
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
