package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/middleware"
	"finitefield.org/landing-web/internal/static"
)

const (
	iconifyScript = "https://code.iconify.design/3/3.1.1/iconify.min.js"
	htmxScript    = "https://unpkg.com/htmx.org@2.0.3"
)

// Layout is the page shell: document head from the view's metadata and the body
// holding children.
func Layout(v *View, children ...g.Node) g.Node {
	m := v.Meta
	return g.Group{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(v.Lang.HTMLLang()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(m.Title)),
				g.If(m.Description != "", Meta(Name("description"), Content(m.Description))),
				g.If(m.Keywords != "", Meta(Name("keywords"), Content(m.Keywords))),
				g.If(m.Author != "", Meta(Name("author"), Content(m.Author))),
				g.If(m.ThemeColor != "", Meta(Name("theme-color"), Content(m.ThemeColor))),
				g.If(m.Canonical != "", Link(Rel("canonical"), Href(m.Canonical))),

				Meta(g.Attr("property", "og:title"), Content(m.OG.Title)),
				Meta(g.Attr("property", "og:description"), Content(m.OG.Description)),
				Meta(g.Attr("property", "og:type"), Content(m.OG.Type)),
				Meta(g.Attr("property", "og:locale"), Content(m.OG.Locale)),
				g.If(m.OG.SiteName != "", Meta(g.Attr("property", "og:site_name"), Content(m.OG.SiteName))),
				g.If(m.OG.URL != "", Meta(g.Attr("property", "og:url"), Content(m.OG.URL))),
				g.If(m.OG.Image != "", Meta(g.Attr("property", "og:image"), Content(m.OG.Image))),
				Meta(Name("twitter:card"), Content(m.Twitter.Card)),
				g.If(m.Twitter.Image != "", Meta(Name("twitter:image"), Content(m.Twitter.Image))),

				g.If(m.Favicon != "", Link(Rel("icon"), Href(m.Favicon))),
				Link(Rel("stylesheet"), Href(static.URL("css/site.css"))),
				g.Group(g.Map(v.JSONLD, func(doc string) g.Node {
					return Script(Type("application/ld+json"), g.Raw(doc))
				})),
				analytics(v),
				Script(Src(iconifyScript)),
				g.If(!v.Static, Script(Src(htmxScript), Defer())),
				Script(Src(static.URL("js/modal.js")), Defer()),
			),
			Body(
				bodyAttrs(v),
				g.Group(children),
			),
		),
	}
}

// bodyAttrs applies the site colour and, when a dialog is rendered open, the
// scroll lock it holds.
func bodyAttrs(v *View) g.Node {
	var style []string
	if v.Site.ThemeColor != "" {
		style = append(style, "--primary:"+v.Site.ThemeColor)
	}
	locked := v.Scroll != nil && v.Scroll.Locked()
	if locked {
		style = append(style, "overflow:"+v.Scroll.Overflow())
	}
	return g.Group{
		Data("site", v.Site.ID),
		g.If(len(style) > 0, Style(strings.Join(style, ";"))),
		g.If(locked, Data("scroll-locked", "true")),
		g.If(!v.Static && v.CSRFToken != "", g.Attr("hx-headers", fmt.Sprintf(`{%q:%q}`, middleware.CSRFHeader, v.CSRFToken))),
	}
}

func analytics(v *View) g.Node {
	a := v.Analytics
	if !a.Enabled() {
		return nil
	}
	var nodes g.Group
	if a.GAMeasurementID != "" {
		nodes = append(nodes,
			Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+a.GAMeasurementID)),
			Script(g.Rawf("window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',%q);", a.GAMeasurementID)),
		)
	}
	if a.GTMContainerID != "" {
		nodes = append(nodes,
			Script(g.Rawf("(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer',%q);", a.GTMContainerID)),
		)
	}
	return nodes
}
