package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chumidex.org/chumidex-web/internal/config"
	"chumidex.org/chumidex-web/internal/handlers"
	"chumidex.org/chumidex-web/internal/view"
)

func newExportCmd() *cobra.Command {
	var (
		out  string
		lang string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and assets to a directory for static hosting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, nil)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = a.deps.Bundle.Fallback()
			}
			if !a.deps.Bundle.IsSupported(lang) {
				return fmt.Errorf("unsupported language %q (supported: %v)", lang, a.deps.Bundle.Supported())
			}
			if err := exportSite(a, out, lang); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %s landing page to %s\n", lang, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&lang, "lang", "", "language to render (default: configured default language)")
	return cmd
}

// exportSite writes index.html and the asset tree under dir.
func exportSite(a *app, dir, lang string) error {
	vm, err := handlers.BuildHomeData(lang, a.deps)
	if err != nil {
		return fmt.Errorf("export: build page: %w", err)
	}
	var buf bytes.Buffer
	if err := a.deps.Renderer.Execute(&buf, view.LayoutTemplate, vm); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: write index: %w", err)
	}
	return copyFS(filepath.Join(dir, "assets"), view.Assets())
}

func copyFS(dst string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("export: read asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("export: write asset %s: %w", path, err)
		}
		return nil
	})
}
