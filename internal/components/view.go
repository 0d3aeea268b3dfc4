// Package components renders the landing page with gomponents. Every section
// renderer takes the resolved View and returns nil when its slice of the content
// document is absent, so the page carries no markup for it at all.
package components

import (
	"time"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/modal"
	"finitefield.org/landing-web/internal/nav"
	"finitefield.org/landing-web/internal/seo"
)

// View is everything a page render needs. It is built per request (or per
// exported file) and never shared.
type View struct {
	Site    content.Site
	Lang    lang.Tag
	Content *content.Document
	UI      i18n.Text

	Meta      seo.Meta
	JSONLD    []string
	Nav       []nav.RenderedItem
	Analytics config.AnalyticsConfig
	Now       time.Time

	// Brief is the sanitized HTML of the project brief, empty when the site has none.
	Brief string

	// Open is the dialog rendered open, nil when every dialog is closed. Scroll is the
	// document scroll flag the open dialog holds.
	Open   *modal.Controller
	Scroll *modal.Document

	Links Links

	// CSRFToken is echoed by the toggle form and by htmx requests; empty on exported pages.
	CSRFToken string

	// Static marks an exported page: no server endpoints, dialogs ship as templates.
	Static bool
}

// Links are the URLs the page points at. They differ between the server and a
// static export.
type Links struct {
	// Toggle is the language switch target: the toggle endpoint, or the other
	// language's exported page.
	Toggle string
	// Next is the path the toggle endpoint redirects back to.
	Next string
	// Close is the page URL with every dialog closed.
	Close string
	// Modal maps a dialog to its no-JS URL (the page with ?modal=).
	Modal map[modal.Name]string
	// Fragment maps a dialog to its HTMX fragment URL; empty for static pages.
	Fragment map[modal.Name]string
}

// HasChat reports whether the site offers the chat dialog.
func (v *View) HasChat() bool { return v.Site.Chat }

// HasBrief reports whether the project dialog has something to show.
func (v *View) HasBrief() bool { return v.Content != nil && v.Content.Brief != nil && v.Brief != "" }

// IsOpen reports whether name is the dialog rendered open.
func (v *View) IsOpen(name modal.Name) bool {
	return v.Open != nil && v.Open.IsOpen() && v.Open.Name() == name
}
