package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

const (
	// LayoutTemplate renders a complete HTML document.
	LayoutTemplate = "base"
	// ContentTemplate renders only the page body, used for htmx partial swaps.
	ContentTemplate = "content"
)

// Assets returns the static asset tree served under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static/assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Options configures a Renderer.
type Options struct {
	// Dev reparses templates on every render.
	Dev bool
	// Dir overrides the embedded templates with an on-disk directory.
	Dir string
}

// Renderer executes the page templates.
type Renderer struct {
	dev   bool
	fsys  fs.FS
	cache *template.Template
}

// New parses the templates once and returns a Renderer. Parse errors are returned
// even in dev mode so a broken template set fails at startup.
func New(opts Options) (*Renderer, error) {
	var fsys fs.FS
	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("view: templates: %w", err)
		}
		fsys = sub
	}
	r := &Renderer{dev: opts.Dev, fsys: fsys}
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = t
	return r, nil
}

func (r *Renderer) parse() (*template.Template, error) {
	files, err := fs.Glob(r.fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("view: glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("view: no templates found")
	}
	t, err := template.New("_root").ParseFS(r.fsys, files...)
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return t, nil
}

func (r *Renderer) templates() (*template.Template, error) {
	if r.dev {
		return r.parse()
	}
	if r.cache == nil {
		return nil, fmt.Errorf("view: template not initialized")
	}
	return r.cache, nil
}

// Execute renders the named template into w.
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	t, err := r.templates()
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("view: execute %s: %w", name, err)
	}
	return nil
}

// Render writes the page as an HTML response. When partial is set only the
// content template is rendered. Output is buffered so a failing template never
// produces a half-written 200.
func (r *Renderer) Render(w http.ResponseWriter, data any, partial bool) error {
	name := LayoutTemplate
	if partial {
		name = ContentTemplate
	}
	var buf bytes.Buffer
	if err := r.Execute(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	// a failed write means the client went away; nothing left to report
	_, _ = buf.WriteTo(w)
	return nil
}
