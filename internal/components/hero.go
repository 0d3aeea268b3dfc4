package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/format"
	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/modal"
)

// focus cards start after the hero text has animated in
var focusStagger = format.Stagger{Base: 700 * time.Millisecond, Step: 100 * time.Millisecond}

// Hero renders the company info block, the call-to-action buttons and the focus
// area cards.
func Hero(v *View) g.Node {
	info := v.Content.CompanyInfo
	return Section(
		ID("top"),
		Class("hero"),
		Div(
			Class("container"),
			g.If(v.Site.Logo != "",
				Img(Class("hero__logo"), Src(v.Site.Logo), Alt(info.Name), Width("240"), Height("240")),
			),
			g.If(info.Tagline != "", P(Class("hero__tagline"), g.Text(info.Tagline))),
			H1(Class("hero__title"), g.Text(info.Name)),
			g.If(info.Slogan != "", P(Class("hero__slogan"), g.Text(info.Slogan))),
			g.If(info.Subtitle != "", P(Class("hero__subtitle"), g.Text(info.Subtitle))),
			heroActions(v),
			focusAreas(v),
		),
	)
}

func heroActions(v *View) g.Node {
	var primary, secondary g.Node
	switch {
	case v.HasChat():
		primary = modalLink(v, modal.Chat, "btn btn--primary",
			Icon(icons.Bot, "", ""), g.Text(v.UI.T("hero.primaryCta")))
	case v.Content.Has(content.KeyContactInfo):
		primary = A(Class("btn btn--primary"), Href("#"+content.KeyContactInfo),
			Icon(icons.Mail, "", ""), g.Text(v.UI.T("hero.primaryCta")))
	}
	if v.HasBrief() {
		secondary = modalLink(v, modal.Project, "btn btn--outline", g.Text(v.UI.T("hero.secondaryCta")))
	}
	if primary == nil && secondary == nil {
		return nil
	}
	return Div(Class("hero__actions"), primary, secondary)
}

func focusAreas(v *View) g.Node {
	if !v.Content.Has(content.KeyFocusAreas) {
		return nil
	}
	cards := make([]g.Node, 0, len(v.Content.FocusAreas))
	for i, area := range v.Content.FocusAreas {
		cards = append(cards, Div(
			Class("card card--center"),
			animated(focusStagger, i, ""),
			cardIcon(icons.Resolve(area.Icon), area.Color),
			H3(Class("card__title"), g.Text(area.Name)),
			P(Class("card__text"), g.Text(area.Description)),
		))
	}
	return Div(
		ID(content.KeyFocusAreas),
		Class("grid grid--4"),
		Data("section", content.KeyFocusAreas),
		g.Group(cards),
	)
}
