package middleware

import (
	"net/http"
	"time"

	"chumidex.org/chumidex-web/internal/i18n"
)

// LangCookieName stores the visitor's language preference.
const LangCookieName = "hl"

// Locale resolves the preferred language and stores it on the request context.
// Only an explicit choice switches language: ?hl= (persisted to cookie), then
// the hl cookie. Accept-Language is ignored, so a plain GET renders the
// fallback locale.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := r.URL.Query().Get("hl"); q != "" {
				if l, ok := bundle.Normalize(q); ok {
					lang = l
					http.SetCookie(w, &http.Cookie{
						Name:     LangCookieName,
						Value:    l,
						Path:     "/",
						MaxAge:   int((365 * 24 * time.Hour).Seconds()),
						SameSite: http.SameSiteLaxMode,
					})
				}
			}
			if lang == "" {
				if c, err := r.Cookie(LangCookieName); err == nil {
					if l, ok := bundle.Normalize(c.Value); ok {
						lang = l
					}
				}
			}
			if lang == "" {
				lang = bundle.Fallback()
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the current language, or fallback when Locale did not run.
func Lang(r *http.Request, fallback string) string {
	if l, ok := LangFromContext(r.Context()); ok {
		return l
	}
	return fallback
}
