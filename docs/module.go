package docs

import (
	"context"

	"github.com/vitalvas/docmount/app"
)

// Module holds resolved options and mounts them on applications.
type Module struct {
	options    Options
	dispatcher *Dispatcher
}

// NewModule validates opts and returns a Module bound to a dispatcher
// built from dopts.
func NewModule(opts Options, dopts ...DispatcherOption) (*Module, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Module{options: opts, dispatcher: NewDispatcher(dopts...)}, nil
}

// NewModuleAsync resolves async and returns a Module for the result.
func NewModuleAsync[D any](ctx context.Context, async AsyncOptions[D], dopts ...DispatcherOption) (*Module, error) {
	opts, err := async.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return &Module{options: opts, dispatcher: NewDispatcher(dopts...)}, nil
}

// Options returns the resolved options.
func (m *Module) Options() Options {
	return m.options
}

// Setup mounts the documentation on application.
func (m *Module) Setup(application app.Application) error {
	return m.dispatcher.Setup(application, m.options)
}
