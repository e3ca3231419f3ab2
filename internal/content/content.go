package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed pages
var embedded embed.FS

// Embedded returns the markdown pages compiled into the binary, rooted at "pages".
func Embedded() fs.FS { return embedded }

// ErrNotFound is returned when no page exists for the requested slug in any language.
var ErrNotFound = errors.New("content: not found")

// Page is a localized block of copy sourced from markdown with YAML front matter.
type Page struct {
	Kind    string
	Slug    string
	Lang    string
	Title   string
	Summary string
	Body    template.HTML
	SEO     SEO
}

// SEO holds optional metadata overrides for a page.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title   string         `yaml:"title"`
	Summary string         `yaml:"summary"`
	Lang    string         `yaml:"lang"`
	SEO     frontMatterSEO `yaml:"seo"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

// Store reads pages laid out as <dir>/<kind>/<lang>.md and caches the rendered result.
type Store struct {
	fsys     fs.FS
	dir      string
	fallback string
	md       goldmark.Markdown
	policy   *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]Page
}

// NewStore builds a Store over fsys. Missing languages fall back to fallback.
func NewStore(fsys fs.FS, dir, fallback string) *Store {
	return &Store{
		fsys:     fsys,
		dir:      dir,
		fallback: fallback,
		md:       goldmark.New(),
		policy:   newPagePolicy(),
		cache:    map[string]Page{},
	}
}

func newPagePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Landing returns the landing page copy for lang.
func (s *Store) Landing(lang string) (Page, error) {
	return s.Get("landing", lang)
}

// Get returns the page of the given kind in lang, falling back to the store's
// fallback language when lang has no page. Pages are cached under the language
// they were read in, so unknown languages never add cache entries.
func (s *Store) Get(kind, lang string) (Page, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range candidates(lang, s.fallback) {
		key := kind + "/" + l
		if p, ok := s.cached(key); ok {
			return p, nil
		}
		p, err := s.read(kind, l)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return Page{}, err
		}
		s.store(key, p)
		return p, nil
	}
	return Page{}, ErrNotFound
}

func candidates(lang, fallback string) []string {
	if lang == "" || lang == fallback {
		return []string{fallback}
	}
	return []string{lang, fallback}
}

func (s *Store) read(kind, lang string) (Page, error) {
	if kind == "" || strings.ContainsAny(kind, `/\.`) || strings.ContainsAny(lang, `/\.`) {
		return Page{}, ErrNotFound
	}
	file := path.Join(s.dir, kind, lang+".md")
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("content: read %s: %w", file, err)
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", file, err)
	}
	page := Page{
		Kind:    kind,
		Slug:    kind,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    template.HTML(s.policy.SanitizeBytes(buf.Bytes())),
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	if page.Title == "" {
		page.Title = prettifySlug(kind)
	}
	return page, nil
}

func (s *Store) cached(key string) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.cache[key]
	return p, ok
}

func (s *Store) store(key string, p Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = p
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
