package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"chumidex.org/chumidex-web/internal/config"
	"chumidex.org/chumidex-web/internal/content"
	"chumidex.org/chumidex-web/internal/i18n"
	mw "chumidex.org/chumidex-web/internal/middleware"
	"chumidex.org/chumidex-web/internal/nav"
	"chumidex.org/chumidex-web/internal/observability"
	"chumidex.org/chumidex-web/internal/seo"
	"chumidex.org/chumidex-web/internal/view"
)

// HomeData is the view model for the landing page.
type HomeData struct {
	Lang        string
	Heading     string
	Description template.HTML
	NavLabel    string
	Nav         []nav.RenderedItem
	SEO         seo.Meta
	Analytics   config.Analytics
	Path        string
}

// Deps are the read-only collaborators shared by page handlers.
type Deps struct {
	Bundle    *i18n.Bundle
	Content   *content.Store
	Renderer  *view.Renderer
	BaseURL   string
	Analytics config.Analytics
}

// BuildHomeData constructs the landing page view model for lang. The result
// depends only on lang and the authoring-time resources behind deps.
func BuildHomeData(lang string, deps Deps) (HomeData, error) {
	page, err := deps.Content.Landing(lang)
	if err != nil {
		return HomeData{}, err
	}
	items := nav.Build(nav.Home)
	for i := range items {
		items[i].Label = deps.Bundle.T(lang, items[i].LabelKey)
	}
	title := page.SEO.Title
	if title == "" {
		title = page.Title
	}
	description := page.SEO.Description
	if description == "" {
		description = page.Summary
	}
	return HomeData{
		Lang:        lang,
		Heading:     page.Title,
		Description: page.Body,
		NavLabel:    deps.Bundle.T(lang, "home.nav_label"),
		Nav:         items,
		SEO:         seo.Landing(deps.BaseURL, lang, title, description, deps.Bundle.Supported()),
		Analytics:   deps.Analytics,
		Path:        nav.Home,
	}, nil
}

// Home renders the landing page.
func Home(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := mw.Lang(r, deps.Bundle.Fallback())
		logger := observability.FromContext(r.Context())
		vm, err := BuildHomeData(lang, deps)
		if err != nil {
			logger.Error("build home data", zap.String("lang", lang), zap.Error(err))
			mw.WriteError(w, r, http.StatusInternalServerError, "page unavailable")
			return
		}
		if err := deps.Renderer.Render(w, vm, mw.WantsPartial(r)); err != nil {
			logger.Error("render home", zap.String("lang", lang), zap.Error(err))
			mw.WriteError(w, r, http.StatusInternalServerError, "template error")
		}
	}
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
