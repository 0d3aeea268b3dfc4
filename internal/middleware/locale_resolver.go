package middleware

import (
	"net/http"

	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
)

// LangCookie carries the visitor's language for the rest of the browser session.
const LangCookie = "hl"

// Language resolves the active language and stores it on the request context.
// Order: ?hl= override, the hl cookie, Accept-Language, then the bundle fallback.
// A valid ?hl= is also written back to the cookie.
func Language(bundle *i18n.Bundle, secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := ResolveLanguage(r, bundle)
			if q := r.URL.Query().Get("hl"); q != "" {
				if t, ok := lang.Parse(q); ok {
					SetLanguageCookie(w, t, secureCookie)
				}
			}
			w.Header().Set("Content-Language", tag.HTMLLang())
			ctx := lang.WithState(r.Context(), lang.NewState(tag))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveLanguage applies the resolution order without touching the response.
func ResolveLanguage(r *http.Request, bundle *i18n.Bundle) lang.Tag {
	if t, ok := lang.Parse(r.URL.Query().Get("hl")); ok {
		return t
	}
	if c, err := r.Cookie(LangCookie); err == nil {
		if t, ok := lang.Parse(c.Value); ok {
			return t
		}
	}
	if bundle == nil {
		return lang.Default
	}
	return bundle.Resolve(r.Header.Get("Accept-Language"))
}

// SetLanguageCookie writes the session cookie (no Expires/Max-Age) holding tag.
func SetLanguageCookie(w http.ResponseWriter, tag lang.Tag, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookie,
		Value:    tag.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Lang returns the language stored by Language, or the default when the
// middleware did not run.
func Lang(r *http.Request) lang.Tag {
	return lang.FromContext(r.Context())
}
