package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/format"
	"finitefield.org/landing-web/internal/icons"
)

var (
	cardStagger  = format.Stagger{Step: 100 * time.Millisecond}
	storyStagger = format.Stagger{Step: 200 * time.Millisecond}
)

// sectionShell wraps a present section; callers have already checked presence.
func sectionShell(v *View, key string, alt bool, subtitle string, body ...g.Node) g.Node {
	cls := "section"
	if alt {
		cls += " section--alt"
	}
	return Section(
		ID(key),
		Class(cls),
		Data("section", key),
		Div(
			Class("container"),
			sectionHead(v, key, subtitle),
			g.Group(body),
		),
	)
}

// simpleCards is the icon/name/description grid shared by most sections.
func simpleCards(items []content.Item, fallback icons.Glyph, cols string, extra func(content.Item) g.Node) g.Node {
	cards := make([]g.Node, 0, len(items))
	for i, it := range items {
		var more g.Node
		if extra != nil {
			more = extra(it)
		}
		cards = append(cards, Div(
			Class("card"),
			animated(cardStagger, i, ""),
			cardIcon(icons.ResolveOr(it.Icon, fallback), it.Color),
			H3(Class("card__title"), g.Text(it.Name)),
			P(Class("card__text"), g.Text(it.Description)),
			more,
		))
	}
	return Div(Class("grid "+cols), g.Group(cards))
}

// Advantages renders the advantage cards with their highlight chips.
func Advantages(v *View) g.Node {
	s := v.Content.Section(content.KeyAdvantages)
	if s == nil {
		return nil
	}
	return sectionShell(v, content.KeyAdvantages, false, s.Subtitle,
		simpleCards(s.Items, icons.Default, "grid--3", func(it content.Item) g.Node {
			return chips(it.Highlights)
		}),
	)
}

// BrandPositioning renders the agent workflow: one numbered card per agent with
// its inputs and outputs.
func BrandPositioning(v *View) g.Node {
	s := v.Content.Section(content.KeyBrandPositioning)
	if s == nil {
		return nil
	}
	cards := make([]g.Node, 0, len(s.Items))
	for i, agent := range s.Items {
		cards = append(cards, Div(
			Class("card"),
			g.If(agent.ID != "", Data("agent", agent.ID)),
			animated(cardStagger, i, ""),
			cardIcon(icons.Resolve(agent.Icon), agent.Color),
			Span(Class("card__label"), g.Text(format.Ordinal(v.UI.T("cards.agent"), i))),
			H3(Class("card__title"), g.Text(agent.Name)),
			P(Class("card__text"), g.Text(agent.Description)),
			ioList(v, agent),
		))
	}
	return sectionShell(v, content.KeyBrandPositioning, true, s.Subtitle,
		Div(Class("grid grid--3"), g.Group(cards)),
	)
}

func ioList(v *View, it content.Item) g.Node {
	if len(it.Input) == 0 && len(it.Output) == 0 {
		return nil
	}
	return Dl(
		Class("card__meta"),
		g.If(len(it.Input) > 0, g.Group{
			Dt(g.Text(v.UI.T("cards.input"))),
			Dd(g.Text(format.JoinList(v.Lang, it.Input))),
		}),
		g.If(len(it.Output) > 0, g.Group{
			Dt(g.Text(v.UI.T("cards.output"))),
			Dd(g.Text(format.JoinList(v.Lang, it.Output))),
		}),
	)
}

// BrandIdentity renders the identity feature cards.
func BrandIdentity(v *View) g.Node {
	s := v.Content.Section(content.KeyBrandIdentity)
	if s == nil {
		return nil
	}
	return sectionShell(v, content.KeyBrandIdentity, false, s.Subtitle,
		simpleCards(s.Items, icons.ImageIcon, "grid--4", nil),
	)
}

// ProductValue renders one card per value dimension.
func ProductValue(v *View) g.Node {
	s := v.Content.Section(content.KeyProductValue)
	if s == nil {
		return nil
	}
	return sectionShell(v, content.KeyProductValue, true, s.Subtitle,
		simpleCards(s.Items, icons.Star, "grid--4", nil),
	)
}

// ScenarioDemand renders the consumption scenario cards.
func ScenarioDemand(v *View) g.Node {
	s := v.Content.Section(content.KeyScenarioDemand)
	if s == nil {
		return nil
	}
	return sectionShell(v, content.KeyScenarioDemand, false, s.Subtitle,
		simpleCards(s.Items, icons.Zap, "grid--3", nil),
	)
}

// BrandSoul renders the brand values; cards slide in from alternating sides.
func BrandSoul(v *View) g.Node {
	s := v.Content.Section(content.KeyBrandSoul)
	if s == nil {
		return nil
	}
	cards := make([]g.Node, 0, len(s.Items))
	for i, it := range s.Items {
		dir := "slide-left"
		if i%2 == 1 {
			dir = "slide-right"
		}
		cards = append(cards, Div(
			Class("card"),
			animated(storyStagger, i, dir),
			cardIcon(icons.ResolveOr(it.Icon, icons.Heart), it.Color),
			H3(Class("card__title"), g.Text(it.Name)),
			P(Class("card__text"), g.Text(it.Description)),
		))
	}
	return sectionShell(v, content.KeyBrandSoul, true, s.Subtitle,
		Div(Class("grid grid--3"), g.Group(cards)),
	)
}

// BrandNarrative renders the workflow steps with their outputs and templates.
func BrandNarrative(v *View) g.Node {
	s := v.Content.Section(content.KeyBrandNarrative)
	if s == nil {
		return nil
	}
	steps := make([]g.Node, 0, len(s.Items))
	for i, step := range s.Items {
		n := i
		if step.Step > 0 {
			n = step.Step - 1
		}
		steps = append(steps, Div(
			Class("card"),
			Data("step", strconv.Itoa(n+1)),
			animated(storyStagger, i, ""),
			cardIcon(icons.ResolveOr(step.Icon, icons.FileText), step.Color),
			Span(Class("card__label"), g.Text(format.Ordinal(v.UI.T("cards.step"), n))),
			H3(Class("card__title"), g.Text(step.Name)),
			P(Class("card__text"), g.Text(step.Description)),
			g.If(len(step.Output) > 0, Div(
				Class("card__meta"),
				Strong(g.Text(v.UI.T("cards.outputs"))),
				Ul(g.Group(g.Map(step.Output, func(o string) g.Node { return Li(g.Text(o)) }))),
			)),
			g.If(len(step.Templates) > 0, Div(
				Class("card__meta"),
				Strong(g.Text(v.UI.T("cards.templates"))),
				chips(step.Templates),
			)),
		))
	}
	return sectionShell(v, content.KeyBrandNarrative, false, s.Subtitle,
		Div(Class("steps"), g.Group(steps)),
	)
}

// CaseStudies renders client stories with metrics and technologies.
func CaseStudies(v *View) g.Node {
	s := v.Content.Section(content.KeyCaseStudies)
	if s == nil {
		return nil
	}
	return sectionShell(v, content.KeyCaseStudies, true, s.Subtitle,
		simpleCards(s.Items, icons.Default, "grid--2", func(it content.Item) g.Node {
			return g.Group{
				g.If(it.Client != "", P(Class("card__meta"),
					Strong(g.Text(v.UI.T("cards.client"))), g.Text(" "+it.Client))),
				g.If(len(it.Metrics) > 0, Div(
					Class("metrics"),
					g.Group(g.Map(it.Metrics, func(m content.Metric) g.Node {
						return Div(
							Class("metric"),
							Span(Class("metric__value"), g.Text(m.Value)),
							Span(Class("metric__label"), g.Text(m.Label)),
						)
					})),
				)),
				g.If(len(it.Technologies) > 0, Div(
					Class("card__meta"),
					Strong(g.Text(v.UI.T("cards.technologies"))),
					chips(it.Technologies),
				)),
			}
		}),
	)
}
