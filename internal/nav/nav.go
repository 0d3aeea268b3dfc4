package nav

import (
	"finitefield.org/landing-web/internal/content"
)

// Item represents an in-page navigation entry pointing at a section anchor.
type Item struct {
	Anchor   string // section id, e.g. "advantages"
	LabelKey string // i18n key, e.g. "navigation.advantages"
}

// RenderedItem is a view model for components.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Sections is the navigation definition in page order. Only sections present in the
// document are rendered.
var Sections = []Item{
	{Anchor: content.KeyFocusAreas, LabelKey: "navigation.focusAreas"},
	{Anchor: content.KeyAdvantages, LabelKey: "navigation.advantages"},
	{Anchor: content.KeyBrandPositioning, LabelKey: "navigation.brandPositioning"},
	{Anchor: content.KeyBrandIdentity, LabelKey: "navigation.brandIdentity"},
	{Anchor: content.KeyProductValue, LabelKey: "navigation.productValue"},
	{Anchor: content.KeyScenarioDemand, LabelKey: "navigation.scenarioDemand"},
	{Anchor: content.KeyBrandSoul, LabelKey: "navigation.brandSoul"},
	{Anchor: content.KeyBrandNarrative, LabelKey: "navigation.brandNarrative"},
	{Anchor: content.KeyCaseStudies, LabelKey: "navigation.caseStudies"},
	{Anchor: content.KeyContactInfo, LabelKey: "navigation.contactInfo"},
}

// Build renders navigation items for the sections doc has, marking active.
func Build(doc *content.Document, active string) []RenderedItem {
	items := make([]RenderedItem, 0, len(Sections))
	for _, it := range Sections {
		if !doc.Has(it.Anchor) {
			continue
		}
		items = append(items, RenderedItem{
			Href:     "#" + it.Anchor,
			LabelKey: it.LabelKey,
			Active:   it.Anchor == active,
		})
	}
	return items
}
