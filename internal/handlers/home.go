package handlers

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"finitefield.org/landing-web/internal/components"
	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/markup"
	"finitefield.org/landing-web/internal/modal"
	"finitefield.org/landing-web/internal/nav"
	"finitefield.org/landing-web/internal/seo"
)

// Pages builds page views from the content store. It is immutable after
// NewPages and safe for concurrent use.
type Pages struct {
	store  *content.Store
	cfg    config.Config
	now    func() time.Time
	briefs map[string]map[lang.Tag]string
}

// Option customises Pages.
type Option func(*Pages)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(p *Pages) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPages renders every project brief up front so a broken brief fails at
// startup rather than on a request.
func NewPages(store *content.Store, cfg config.Config, opts ...Option) (*Pages, error) {
	p := &Pages{
		store:  store,
		cfg:    cfg,
		now:    time.Now,
		briefs: map[string]map[lang.Tag]string{},
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, site := range store.Sites() {
		p.briefs[site.ID] = map[lang.Tag]string{}
		for _, l := range lang.All() {
			pair, err := store.Resolve(site.ID, l)
			if err != nil {
				return nil, err
			}
			if pair.Content.Brief == nil {
				continue
			}
			html, err := markup.Render(pair.Content.Brief.Body)
			if err != nil {
				return nil, fmt.Errorf("brief %s/%s: %w", site.ID, l, err)
			}
			p.briefs[site.ID][l] = html
		}
	}
	return p, nil
}

// Store exposes the content store the pages read from.
func (p *Pages) Store() *content.Store { return p.store }

// ViewOptions describe one render of a page.
type ViewOptions struct {
	// Path is the canonical path of the page ("/" or "/sites/<id>").
	Path string
	// Open names the dialog to render open; empty renders every dialog closed.
	Open modal.Name
	// Static marks an exported page.
	Static bool
	// Links overrides the URLs computed from Path. Used by the exporter.
	Links *components.Links
}

// BuildView resolves the content pair for site and l and assembles the view.
// An Open dialog the site does not offer is ignored.
func (p *Pages) BuildView(siteID string, l lang.Tag, opts ViewOptions) (*components.View, error) {
	pair, err := p.store.Resolve(siteID, l)
	if err != nil {
		return nil, err
	}
	if opts.Path == "" {
		opts.Path = "/"
	}

	meta := seo.Build(pair.Site, pair.Content, pair.Lang, p.cfg.Sites.BaseURL, opts.Path)
	v := &components.View{
		Site:      pair.Site,
		Lang:      pair.Lang,
		Content:   pair.Content,
		UI:        pair.UI,
		Meta:      meta,
		Nav:       nav.Build(pair.Content, ""),
		Analytics: p.cfg.Analytics,
		Now:       p.now(),
		Brief:     p.briefs[siteID][pair.Lang],
		Scroll:    modal.NewDocument(""),
		Static:    opts.Static,
	}
	base := p.siteBase(pair.Site)
	v.JSONLD = []string{
		seo.JSON(seo.Organization(pair.Content.CompanyInfo.Name, base+"/", absoluteURL(base, pair.Site.Logo), pair.Content.ContactInfo)),
		seo.JSON(seo.WebSite(meta.OG.SiteName, base+"/", pair.Lang)),
	}

	if opts.Links != nil {
		v.Links = *opts.Links
	} else {
		v.Links = ServerLinks(siteID, opts.Path)
	}

	if opts.Open != "" {
		ctrl := modal.NewController(opts.Open, v.Scroll)
		v.Open = ctrl
		if (opts.Open == modal.Chat && v.HasChat()) || (opts.Open == modal.Project && v.HasBrief()) {
			ctrl.Open()
		}
	}
	return v, nil
}

// ServerLinks computes the URLs of a page served at path.
func ServerLinks(siteID, path string) components.Links {
	links := components.Links{
		Toggle:   "/lang/toggle",
		Next:     path,
		Close:    path,
		Modal:    map[modal.Name]string{},
		Fragment: map[modal.Name]string{},
	}
	for _, name := range modal.Names() {
		q := url.Values{"modal": {string(name)}}
		links.Modal[name] = path + "?" + q.Encode()
		fq := url.Values{"site": {siteID}}
		links.Fragment[name] = "/fragments/modal/" + string(name) + "?" + fq.Encode()
	}
	return links
}

func (p *Pages) siteBase(site content.Site) string {
	if p.cfg.Sites.BaseURL != "" {
		return strings.TrimRight(p.cfg.Sites.BaseURL, "/")
	}
	return strings.TrimRight(site.BaseURL, "/")
}

func absoluteURL(base, ref string) string {
	if ref == "" || base == "" || strings.Contains(ref, "://") {
		return ref
	}
	return base + "/" + strings.TrimLeft(ref, "/")
}
