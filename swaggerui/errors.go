package swaggerui

import "errors"

var (
	// ErrNoRouter is returned by Setup when the application does not expose
	// an HTTP instance that can register routes.
	ErrNoRouter = errors.New("swaggerui: application has no usable router")

	// ErrNoDocument is returned by Setup when the document is nil.
	ErrNoDocument = errors.New("swaggerui: document must not be nil")

	// ErrInvalidPath is returned by Setup when the docs path resolves to "/".
	ErrInvalidPath = errors.New("swaggerui: invalid docs path")

	// ErrInvalidOption is returned when an option has the wrong type or
	// cannot be encoded.
	ErrInvalidOption = errors.New("swaggerui: invalid option")
)
