package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chumidex.org/chumidex-web/internal/config"
	"chumidex.org/chumidex-web/internal/content"
	"chumidex.org/chumidex-web/internal/handlers"
	"chumidex.org/chumidex-web/internal/i18n"
	"chumidex.org/chumidex-web/internal/view"
)

// supportedLangs lists the locales shipped with the binary; the configured
// default must be one of them.
var supportedLangs = []string{"en", "sw"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:          "chumidex-web",
		Short:        "ChumiDex web frontend",
		SilenceUsage: true,
		// running the bare binary serves, matching container entrypoints
		RunE: serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newExportCmd(), newRoutesCmd())
	return root
}

// app bundles the loaded configuration with the page dependencies.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	deps   handlers.Deps
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle, err := i18n.Load(i18n.Embedded(), "locales", cfg.DefaultLang, supportedLangs)
	if err != nil {
		return nil, fmt.Errorf("load i18n: %w", err)
	}
	renderer, err := view.New(view.Options{Dev: cfg.Dev, Dir: cfg.TemplatesDir})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &app{
		cfg:    cfg,
		logger: logger,
		deps: handlers.Deps{
			Bundle:    bundle,
			Content:   content.NewStore(content.Embedded(), "pages", cfg.DefaultLang),
			Renderer:  renderer,
			BaseURL:   cfg.BaseURL,
			Analytics: cfg.Analytics,
		},
	}, nil
}
