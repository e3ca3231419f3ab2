package seo

import (
	"html/template"
	"sort"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Alternate is an hreflang link to a localized variant of the page.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	// JSONLD payloads are pre-encoded; templates emit them inside script tags.
	JSONLD []template.JS
}

// SiteName is the brand used in titles and structured data.
const SiteName = "ChumiDex"

// Landing builds metadata for the landing page served at baseURL.
// langs lists the locales the page is available in; the hl query selects one.
func Landing(baseURL, lang, title, description string, langs []string) Meta {
	baseURL = strings.TrimRight(baseURL, "/")
	canonical := baseURL + "/"
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         canonical,
			SiteName:    SiteName,
			Locale:      lang,
		},
		Twitter: Twitter{Card: "summary"},
	}
	sorted := append([]string(nil), langs...)
	sort.Strings(sorted)
	for _, l := range sorted {
		m.Alternates = append(m.Alternates, Alternate{Href: canonical + "?hl=" + l, Hreflang: l})
	}
	if len(sorted) > 0 {
		m.Alternates = append(m.Alternates, Alternate{Href: canonical, Hreflang: "x-default"})
	}
	for _, payload := range []map[string]any{
		Organization(SiteName, canonical, ""),
		WebSite(SiteName, canonical, lang),
	} {
		if s := JSON(payload); s != "" {
			m.JSONLD = append(m.JSONLD, template.JS(s))
		}
	}
	return m
}
