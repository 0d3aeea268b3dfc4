package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/middleware"
)

// LanguageToggle renders the fixed language switch. The label names the language
// the page switches to. Served pages post to the toggle endpoint; exported pages
// link to the other language's file.
func LanguageToggle(v *View) g.Node {
	label := v.UI.T("navigation.toggleLabel")
	title := v.UI.T("navigation.switchLanguage")
	if v.Static {
		return A(
			Class("lang-toggle"),
			Href(v.Links.Toggle),
			g.Attr("title", title),
			g.Attr("hreflang", v.Lang.Toggle().HTMLLang()),
			Icon(icons.Languages, "", ""),
			Span(g.Text(label)),
		)
	}
	return g.El("form",
		Method("post"),
		Action(v.Links.Toggle),
		Input(Type("hidden"), Name("next"), Value(v.Links.Next)),
		g.If(v.CSRFToken != "", Input(Type("hidden"), Name(middleware.CSRFField), Value(v.CSRFToken))),
		Button(
			Type("submit"),
			Class("lang-toggle"),
			g.Attr("title", title),
			Icon(icons.Languages, "", ""),
			Span(g.Text(label)),
		),
	)
}

// SectionNav lists the sections present on the page.
func SectionNav(v *View) g.Node {
	if len(v.Nav) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(v.Nav))
	for _, it := range v.Nav {
		items = append(items, Li(A(
			Href(it.Href),
			g.If(it.Active, Aria("current", "true")),
			g.Text(v.UI.T(it.LabelKey)),
		)))
	}
	return Nav(Class("section-nav"), Aria("label", v.UI.T("navigation.home")), Ul(g.Group(items)))
}
