package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX  ctxKey = "is_htmx"
	ctxKeyBoosted ctxKey = "hx_boosted"
	ctxKeyRestore ctxKey = "hx_history_restore"
	ctxKeyLang    ctxKey = "lang"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is, boosted bool) context.Context {
	ctx = context.WithValue(ctx, ctxKeyIsHTMX, is)
	return context.WithValue(ctx, ctxKeyBoosted, boosted)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// IsBoosted returns whether an htmx request came from a boosted link
func IsBoosted(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyBoosted).(bool)
	return v
}

// WithHistoryRestore marks a request htmx sent to rebuild a page missing
// from its history cache
func WithHistoryRestore(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyRestore, true)
}

// IsHistoryRestore returns whether htmx is restoring history
func IsHistoryRestore(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyRestore).(bool)
	return v
}

// WithLang stores the resolved language
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// LangFromContext returns the resolved language, if any
func LangFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyLang).(string)
	return v, ok && v != ""
}
