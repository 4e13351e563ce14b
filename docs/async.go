package docs

import (
	"context"
	"fmt"
)

// AsyncOptions produces Options from injected dependencies, for options
// that are only known after other components start (a config service, a
// secrets store).
//
//	async := docs.AsyncOptions[*Config]{
//	    Inject: cfg,
//	    Factory: func(ctx context.Context, cfg *Config) (docs.Options, error) {
//	        return docs.NewOptions(cfg.ServiceName, docs.WithVersion(cfg.Version))
//	    },
//	}
type AsyncOptions[D any] struct {
	Inject  D
	Factory func(ctx context.Context, deps D) (Options, error)
}

type resolved struct {
	opts Options
	err  error
}

// Resolve runs the factory and validates its result. It returns ctx.Err()
// if ctx is done before the factory completes. Factory errors are returned
// unchanged.
func (a AsyncOptions[D]) Resolve(ctx context.Context) (Options, error) {
	if a.Factory == nil {
		return Options{}, configError(ErrNoFactory)
	}

	ch := make(chan resolved, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				ch <- resolved{err: fmt.Errorf("docs: options factory panicked: %v", p)}
			}
		}()

		opts, err := a.Factory(ctx, a.Inject)
		ch <- resolved{opts: opts, err: err}
	}()

	select {
	case <-ctx.Done():
		return Options{}, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return Options{}, r.err
		}
		if err := r.opts.Validate(); err != nil {
			return Options{}, err
		}
		return r.opts, nil
	}
}
