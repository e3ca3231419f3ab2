package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chumidex.org/chumidex-web/internal/config"
	"chumidex.org/chumidex-web/internal/handlers"
	mw "chumidex.org/chumidex-web/internal/middleware"
	"chumidex.org/chumidex-web/internal/observability"
	"chumidex.org/chumidex-web/internal/view"
)

func newServeCmd() *cobra.Command {
	var (
		addr     string
		tmplPath string
		dev      bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("templates") {
				cfg.TemplatesDir = tmplPath
			}
			if flags.Changed("dev") {
				cfg.Dev = dev
			}
			listen := cfg.Addr()
			if flags.Changed("addr") {
				listen = addr
			}

			logger, err := observability.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			logger = logger.Named("web")

			a, err := newApp(cfg, logger)
			if err != nil {
				logger.Error("startup failed", zap.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, a, listen)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address (default from CHUMIDEX_WEB_PORT / PORT)")
	cmd.Flags().StringVar(&tmplPath, "templates", "", "templates directory overriding the embedded set")
	cmd.Flags().BoolVar(&dev, "dev", false, "reparse templates on every request")
	return cmd
}

func newRouter(a *app) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(a.logger))
	r.Use(mw.Recover(a.logger))
	r.Use(middleware.Compress(5))
	timeout := a.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", handlers.Healthz)

	// Static assets under /assets/
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(view.Assets())))

	r.Group(func(r chi.Router) {
		r.Use(mw.Locale(a.deps.Bundle))
		r.Use(mw.VaryLocale)
		r.Use(mw.VaryHTMX)
		r.Get("/", handlers.Home(a.deps))
	})
	return r
}

func runServer(ctx context.Context, a *app, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if a.cfg.IsProd() && a.cfg.Dev {
		a.logger.Warn("template reparsing enabled in prod")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("web listening",
			zap.String("addr", addr),
			zap.Bool("dev", a.cfg.Dev),
			zap.String("env", a.cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := a.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		a.logger.Info("shutting down", zap.Duration("timeout", timeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
