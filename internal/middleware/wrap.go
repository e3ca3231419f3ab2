package middleware

import "net/http"

// VaryLocale marks dynamic responses as varying on the hl cookie, which
// carries an explicit language choice.
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// append to existing Vary if any
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}

// VaryHTMX marks responses whose body depends on the HX-Request header, so
// shared caches keep the content partial apart from the full document.
func VaryHTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r)
	})
}
