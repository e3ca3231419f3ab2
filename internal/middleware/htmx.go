package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers/middlewares can adapt responses
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		boosted := r.Header.Get("HX-Boosted") == "true"
		ctx := WithHTMX(r.Context(), is, boosted)
		if r.Header.Get("HX-History-Restore-Request") == "true" {
			ctx = WithHistoryRestore(ctx)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WantsPartial reports whether the response should contain only the page
// content. Boosted navigations and history cache misses expect a full
// document.
func WantsPartial(r *http.Request) bool {
	ctx := r.Context()
	return IsHTMX(ctx) && !IsBoosted(ctx) && !IsHistoryRestore(ctx)
}
