package components

import (
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/format"
	"finitefield.org/landing-web/internal/icons"
)

// Icon renders a glyph as an iconify span. An empty label hides it from assistive tech.
func Icon(glyph icons.Glyph, size, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class(glyph.Class(size)),
			g.Attr("data-icon", glyph.Name),
			Role("img"),
			Aria("label", ariaLabel),
		)
	}
	return Span(
		Class(glyph.Class(size)),
		g.Attr("data-icon", glyph.Name),
		Aria("hidden", "true"),
	)
}

// cardIcon is the tinted square holding a card's glyph. color is a hex value
// from the content document; the tint is the same colour at low alpha.
func cardIcon(glyph icons.Glyph, color string) g.Node {
	var style string
	if strings.HasPrefix(color, "#") && len(color) == 7 {
		style = "background-color:" + color + "15;color:" + color
	}
	return Div(
		Class("card__icon"),
		g.If(style != "", Style(style)),
		Icon(glyph, "", ""),
	)
}

// animated marks a node for the entrance animation with its staggered delay.
func animated(s format.Stagger, index int, kind string) g.Group {
	if kind == "" {
		kind = "fade-up"
	}
	return g.Group{
		Data("animate", kind),
		Style(s.CSS(index)),
	}
}

// sectionHead renders the badge, title and subtitle of a section from UI text.
// A subtitle authored in the content document wins over the UI text one.
func sectionHead(v *View, key, subtitle string) g.Node {
	badge := v.UI.Or(key+".badge", v.UI.T("navigation."+key))
	title := v.UI.Or(key+".title", "")
	highlight := v.UI.Or(key+".titleHighlight", "")
	if subtitle == "" {
		subtitle = v.UI.Or(key+".subtitle", "")
	}
	return Div(
		Class("section__head"),
		Span(Class("badge"), g.Text(badge)),
		g.If(title != "" || highlight != "",
			H2(
				Class("section__title"),
				g.Text(title),
				g.If(highlight != "", Span(Class("section__highlight"), g.Text(" "+highlight))),
			),
		),
		g.If(subtitle != "", P(Class("section__subtitle"), g.Text(subtitle))),
	)
}

// chips renders a short list of tags; nil when items is empty.
func chips(items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Ul(
		Class("chips"),
		g.Group(g.Map(items, func(s string) g.Node {
			return Li(Class("chip"), g.Text(s))
		})),
	)
}

// mailto builds a mailto link with a pre-filled subject. Spaces are encoded as %20.
func mailto(email, subject string) string {
	href := "mailto:" + email
	if subject != "" {
		href += "?subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	}
	return href
}
