package openapi

import "errors"

var (
	// ErrNoRoutes is returned by Build when there is no route tree to walk.
	ErrNoRoutes = errors.New("openapi: no routes to document")

	// ErrDuplicateOperationID is returned by Build when two routes declare
	// the same operation ID.
	ErrDuplicateOperationID = errors.New("openapi: duplicate operation id")
)
