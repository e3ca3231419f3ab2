package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"chumidex.org/chumidex-web/internal/config"
	"chumidex.org/chumidex-web/internal/content"
	"chumidex.org/chumidex-web/internal/i18n"
	mw "chumidex.org/chumidex-web/internal/middleware"
	"chumidex.org/chumidex-web/internal/view"
)

func newDeps(t *testing.T) Deps {
	t.Helper()
	bundle, err := i18n.Load(i18n.Embedded(), "locales", "en", []string{"en", "sw"})
	require.NoError(t, err)
	renderer, err := view.New(view.Options{})
	require.NoError(t, err)
	return Deps{
		Bundle:   bundle,
		Content:  content.NewStore(content.Embedded(), "pages", "en"),
		Renderer: renderer,
		BaseURL:  "https://chumidex.example",
	}
}

func serveHome(t *testing.T, deps Deps, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	h := mw.HTMX(mw.Locale(deps.Bundle)(Home(deps)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parseDoc(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestHomeRendersLanding(t *testing.T) {
	deps := newDeps(t)
	rec := serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc := parseDoc(t, rec.Body.String())

	headings := doc.Find("h1, h2, h3, h4, h5, h6")
	require.Equal(t, 1, headings.Length(), "landing should have exactly one heading")
	require.Equal(t, "h1", goquery.NodeName(headings))
	require.Equal(t, "Welcome to ChumiDex", strings.TrimSpace(headings.Text()))

	var found bool
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "Lisk L2") {
			found = true
		}
	})
	require.True(t, found, "description paragraph should mention Lisk L2")

	links := doc.Find("[data-nav-action]")
	require.Equal(t, 4, links.Length())
	want := []struct{ label, href string }{
		{"Swap Tokens", "/swap"},
		{"Add/Remove Liquidity", "/liquidity"},
		{"Governance", "/governance"},
		{"Dashboard", "/dashboard"},
	}
	links.Each(func(i int, s *goquery.Selection) {
		require.Equal(t, "a", goquery.NodeName(s))
		require.Equal(t, want[i].label, strings.TrimSpace(s.Text()))
		require.Equal(t, want[i].href, s.AttrOr("href", ""))
		_, current := s.Attr("aria-current")
		require.False(t, current, "no action is current on the landing page")
	})
	require.Equal(t, "true", doc.Find("nav").AttrOr("hx-boost", ""))
	require.Equal(t, 1, doc.Find(".grid.grid-cols-1.md\\:grid-cols-2").Length())

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "https://chumidex.example/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestHomeRenderIsIdempotent(t *testing.T) {
	deps := newDeps(t)
	first := serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	second := serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	require.Equal(t, first, second)

	a, err := html.Parse(strings.NewReader(first))
	require.NoError(t, err)
	b, err := html.Parse(strings.NewReader(second))
	require.NoError(t, err)
	require.True(t, sameTree(a, b), "re-render should produce an identical tree")
}

func sameTree(a, b *html.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Data != b.Data || len(a.Attr) != len(b.Attr) {
		return false
	}
	for i := range a.Attr {
		if a.Attr[i] != b.Attr[i] {
			return false
		}
	}
	ca, cb := a.FirstChild, b.FirstChild
	for ca != nil && cb != nil {
		if !sameTree(ca, cb) {
			return false
		}
		ca, cb = ca.NextSibling, cb.NextSibling
	}
	return ca == nil && cb == nil
}

func TestHomeIgnoresAcceptLanguage(t *testing.T) {
	deps := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "sw-KE,sw;q=0.9,en;q=0.8")
	rec := serveHome(t, deps, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "en", rec.Header().Get("Content-Language"))

	doc := parseDoc(t, rec.Body.String())
	require.Equal(t, "Welcome to ChumiDex", strings.TrimSpace(doc.Find("h1").Text()))
	var labels []string
	doc.Find("[data-nav-action]").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	require.Equal(t, []string{"Swap Tokens", "Add/Remove Liquidity", "Governance", "Dashboard"}, labels)

	plain := serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, plain.Body.String(), rec.Body.String())
}

func TestHomeLocalizedSwahili(t *testing.T) {
	deps := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/?hl=sw", nil)
	rec := serveHome(t, deps, req)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseDoc(t, rec.Body.String())
	require.Equal(t, "sw", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "Karibu ChumiDex", strings.TrimSpace(doc.Find("h1").Text()))

	links := doc.Find("[data-nav-action]")
	require.Equal(t, 4, links.Length())
	require.Equal(t, "Badilisha Tokeni", strings.TrimSpace(links.First().Text()))
	require.Equal(t, "/swap", links.First().AttrOr("href", ""))
}

func TestHomeHTMXPartial(t *testing.T) {
	deps := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := serveHome(t, deps, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.NotContains(t, body, "<html")
	require.Contains(t, body, "data-landing")
	require.Equal(t, 4, parseDoc(t, body).Find("[data-nav-action]").Length())
}

func TestHomeBoostedGetsFullDocument(t *testing.T) {
	deps := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	rec := serveHome(t, deps, req)
	require.Contains(t, rec.Body.String(), "<html")
}

func TestHomeHistoryRestoreGetsFullDocument(t *testing.T) {
	deps := newDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-History-Restore-Request", "true")
	rec := serveHome(t, deps, req)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseDoc(t, rec.Body.String())
	require.Contains(t, rec.Body.String(), "<html")
	require.Equal(t, 1, doc.Find("main#main [data-landing]").Length())
}

func TestHomeAnalyticsSnippet(t *testing.T) {
	deps := newDeps(t)
	deps.Analytics = config.Analytics{GA4MeasurementID: "G-TEST123"}
	rec := serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Contains(t, rec.Body.String(), "gtag/js?id=G-TEST123")

	deps.Analytics = config.Analytics{}
	rec = serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotContains(t, rec.Body.String(), "gtag")
}

func TestBuildHomeDataMissingContent(t *testing.T) {
	deps := newDeps(t)
	deps.Content = content.NewStore(content.Embedded(), "nowhere", "en")

	_, err := BuildHomeData("en", deps)
	require.ErrorIs(t, err, content.ErrNotFound)

	rec := serveHome(t, deps, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
