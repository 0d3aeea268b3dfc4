package handlers

import (
	g "maragu.dev/gomponents"

	"finitefield.org/landing-web/internal/components"
)

// Compose assembles the section renderers in page order inside the layout.
// Absent sections render nothing.
func Compose(v *components.View) g.Node {
	return components.Layout(v,
		components.LanguageToggle(v),
		components.SectionNav(v),
		g.El("main",
			components.Hero(v),
			components.Advantages(v),
			components.BrandPositioning(v),
			components.BrandIdentity(v),
			components.ProductValue(v),
			components.ScenarioDemand(v),
			components.BrandSoul(v),
			components.BrandNarrative(v),
			components.CaseStudies(v),
			components.ContactSection(v),
		),
		components.PageFooter(v),
		components.FloatingChatButton(v),
		components.ModalRoot(v),
	)
}
