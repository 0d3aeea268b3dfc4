package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"finitefield.org/landing-web/internal/components"
	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/middleware"
	"finitefield.org/landing-web/internal/modal"
	"finitefield.org/landing-web/internal/observability"
	"finitefield.org/landing-web/internal/requestctx"
)

// SiteFromHost maps the request host to a site id using the configured host
// table. Requests for unmapped hosts keep the default site.
func SiteFromHost(cfg config.SiteConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if site, ok := cfg.SiteForHost(r.Host); ok {
				r = r.WithContext(requestctx.WithSite(r.Context(), site))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Home renders the site selected by the host mapping at "/".
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, p.hostSite(r), "/")
}

// Site renders /sites/{site}.
func (p *Pages) Site(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "site")
	p.servePage(w, r, id, "/sites/"+id)
}

func (p *Pages) hostSite(r *http.Request) string {
	if id, ok := requestctx.Site(r.Context()); ok && id != "" {
		return id
	}
	return p.cfg.Sites.Default
}

func (p *Pages) servePage(w http.ResponseWriter, r *http.Request, siteID, path string) {
	var open modal.Name
	if q := r.URL.Query().Get("modal"); q != "" {
		if name, err := modal.ParseName(q); err == nil {
			open = name
		}
	}
	v, err := p.BuildView(siteID, middleware.Lang(r), ViewOptions{Path: path, Open: open})
	if err != nil {
		p.fail(w, r, err)
		return
	}
	if v.Open != nil {
		defer v.Open.Release()
	}
	v.CSRFToken = middleware.CSRFToken(r.Context())
	writeNode(w, r, http.StatusOK, Compose(v))
}

// ModalFragment renders one dialog for htmx to swap into the modal root. The
// site comes from ?site=, falling back to the host mapping.
func (p *Pages) ModalFragment(w http.ResponseWriter, r *http.Request) {
	name, err := modal.ParseName(chi.URLParam(r, "name"))
	if err != nil {
		middleware.WriteError(w, r, http.StatusNotFound, "")
		return
	}
	siteID := r.URL.Query().Get("site")
	if siteID == "" {
		siteID = p.hostSite(r)
	}
	path := "/"
	if siteID != p.hostSite(r) {
		path = "/sites/" + siteID
	}
	v, err := p.BuildView(siteID, middleware.Lang(r), ViewOptions{Path: path, Open: name})
	if err != nil {
		p.fail(w, r, err)
		return
	}
	defer v.Open.Release()
	node := components.ModalDialog(v, name)
	if node == nil {
		middleware.WriteError(w, r, http.StatusNotFound, "")
		return
	}
	writeNode(w, r, http.StatusOK, node)
}

// Toggle flips the active language, stores it in the session cookie and sends
// the visitor back to next. htmx requests get a refresh instead of a redirect.
func (p *Pages) Toggle(w http.ResponseWriter, r *http.Request) {
	var next lang.Tag
	if st := lang.StateFrom(r.Context()); st != nil {
		next = st.Toggle()
	} else {
		next = middleware.Lang(r).Toggle()
	}
	middleware.SetLanguageCookie(w, next, p.cfg.Production())

	if middleware.IsHTMX(r.Context()) {
		middleware.HXRefresh(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	target := safeNext(r.FormValue("next"))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// safeNext keeps the redirect on this origin.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

// Healthz answers liveness probes.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Robots serves robots.txt, pointing crawlers at the configured base URL.
func (p *Pages) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if p.cfg.Production() {
		b.WriteString("Allow: /\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	_, _ = w.Write([]byte(b.String()))
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrUnknownSite) {
		middleware.WriteError(w, r, http.StatusNotFound, "")
		return
	}
	observability.FromContext(r.Context()).Error("build view", zap.Error(err))
	middleware.WriteError(w, r, http.StatusInternalServerError, "")
}

// writeNode renders into a buffer first so a render error still yields a clean 500.
func writeNode(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		observability.FromContext(r.Context()).Error("render", zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
