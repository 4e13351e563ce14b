package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vitalvas/docmount/app"
	"github.com/vitalvas/docmount/docs"
	"github.com/vitalvas/docmount/internal/config"
)

const (
	serverReadHeaderTimeout = 5 * time.Second
	serverIdleTimeout       = 60 * time.Second
)

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("cli: bind flag %q: %v", key, err))
	}
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo items API with mounted documentation",
		Long: `Serve the demo items API and mount its documentation.

The configuration file (--config) holds the listener settings and the docs
options: title, path, ui provider and the provider options.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().String("address", "", "Address to listen on (overrides server.address)")
	mustBind(v, "config", cmd.Flags().Lookup("config"))
	mustBind(v, "address", cmd.Flags().Lookup("address"))

	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	logger, err := newLogger(v.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig(config.WithConfigPath(v.GetString("config")))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	address := cfg.Server.GetAddress()
	if override := v.GetString("address"); override != "" {
		address = override
	}

	handler, err := newHandler(cfg.Docs, logger)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	return serve(ctx, listener, handler, cfg.Server.GetShutdownTimeout(), logger)
}

// newHandler builds the demo application and mounts its documentation.
func newHandler(opts docs.Options, logger *zap.Logger) (http.Handler, error) {
	a := app.New(app.WithLogger(logger))
	registerItems(a, newItemStore())

	dispatcher := docs.NewDispatcher(docs.WithLogger(logger))
	if err := dispatcher.Setup(a, opts); err != nil {
		return nil, fmt.Errorf("failed to mount docs: %w", err)
	}

	opts = opts.WithDefaults()
	logger.Info("api docs mounted",
		zap.String("provider", string(opts.Provider)),
		zap.String("path", "/"+strings.Trim(opts.Path, "/")),
	)

	return a, nil
}

func serve(ctx context.Context, listener net.Listener, handler http.Handler, shutdownTimeout time.Duration, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		IdleTimeout:       serverIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", zap.String("address", listener.Addr().String()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
