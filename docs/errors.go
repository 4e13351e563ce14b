package docs

import (
	"errors"
	"fmt"
)

// Configuration errors. They are reported wrapped in a *ConfigurationError.
var (
	ErrNoApplication = errors.New("docs: application must not be nil")
	ErrTitleRequired = errors.New("docs: title is required")
	ErrUnknownUI     = errors.New("docs: unknown ui provider")
	ErrUnknownTheme  = errors.New("docs: unknown swagger ui theme")
	ErrInvalidAuth   = errors.New("docs: invalid auth configuration")
	ErrNoFactory     = errors.New("docs: options factory must not be nil")
	ErrNoMount       = errors.New("docs: no mount registered for ui provider")

	// ErrConflictingOptions is reported when both provider option sets are
	// populated.
	ErrConflictingOptions = errors.New("docs: swaggerUI and scalar options are mutually exclusive")

	// ErrOptionsMismatch is reported when the populated provider option set
	// does not belong to the selected provider.
	ErrOptionsMismatch = errors.New("docs: provider options do not match the selected ui provider")
)

// Adapter errors. They are reported wrapped in an *AdapterError.
var (
	ErrNoHTTPAdapter       = errors.New("docs: application exposes no HTTP adapter")
	ErrNoHTTPInstance      = errors.New("docs: HTTP adapter returned no instance")
	ErrNoRouteRegistration = errors.New("docs: HTTP instance cannot register routes")
)

// ConfigurationError reports options or arguments that can never succeed.
// It is returned before any document is built or route is mounted.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("docs: configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(errs ...error) error {
	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	return &ConfigurationError{Err: err}
}

// AdapterError reports an application whose HTTP layer cannot host a
// documentation mount.
type AdapterError struct {
	// Provider is the mount that rejected the adapter.
	Provider Provider
	// Instance is the Go type of the retrieved HTTP instance, if any.
	Instance string
	Err      error
}

func (e *AdapterError) Error() string {
	if e.Instance != "" {
		return fmt.Sprintf("docs: %s mount: %v (instance %s)", e.Provider, e.Err, e.Instance)
	}
	return fmt.Sprintf("docs: %s mount: %v", e.Provider, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
