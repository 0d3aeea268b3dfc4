package content

import (
	"fmt"

	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/lang"
)

// ParityIssue describes a structural difference between the two language documents
// of a site. Issues are authoring problems: rendering still succeeds, the affected
// section just renders differently (or not at all) in one language.
type ParityIssue struct {
	Site    string
	Section string
	Detail  string
}

func (p ParityIssue) String() string {
	return fmt.Sprintf("%s/%s: %s", p.Site, p.Section, p.Detail)
}

// CheckParity compares section presence and card counts between a and b.
func CheckParity(site string, a, b *Document) []ParityIssue {
	var issues []ParityIssue
	for _, key := range SectionKeys() {
		ha, hb := a.Has(key), b.Has(key)
		switch {
		case ha && !hb:
			issues = append(issues, ParityIssue{Site: site, Section: key, Detail: fmt.Sprintf("present in %s only", lang.ZH)})
		case !ha && hb:
			issues = append(issues, ParityIssue{Site: site, Section: key, Detail: fmt.Sprintf("present in %s only", lang.EN)})
		case ha && hb:
			if na, nb := a.itemCount(key), b.itemCount(key); na != nb {
				issues = append(issues, ParityIssue{Site: site, Section: key, Detail: fmt.Sprintf("item count %d vs %d", na, nb)})
			}
			issues = append(issues, iconDrift(site, key, a, b)...)
		}
	}
	if (a.Brief == nil) != (b.Brief == nil) {
		issues = append(issues, ParityIssue{Site: site, Section: "brief", Detail: "project brief missing in one language"})
	}
	return issues
}

// iconDrift flags cards at the same index that use different icons.
func iconDrift(site, key string, a, b *Document) []ParityIssue {
	var ia, ib []Item
	switch key {
	case KeyFocusAreas:
		ia, ib = a.FocusAreas, b.FocusAreas
	case KeyContactInfo:
		return nil
	default:
		ia, ib = a.Section(key).Items, b.Section(key).Items
	}
	var issues []ParityIssue
	for i := 0; i < len(ia) && i < len(ib); i++ {
		if ia[i].Icon != ib[i].Icon {
			issues = append(issues, ParityIssue{
				Site:    site,
				Section: key,
				Detail:  fmt.Sprintf("item %d icon %q vs %q", i, ia[i].Icon, ib[i].Icon),
			})
		}
	}
	return issues
}

// Parity runs CheckParity for every site in the store.
func (s *Store) Parity() []ParityIssue {
	var out []ParityIssue
	for _, id := range s.order {
		e := s.sites[id]
		out = append(out, CheckParity(id, e.docs[lang.ZH], e.docs[lang.EN])...)
	}
	return out
}

// CheckIcons flags icon keys in d that have no glyph of their own. Such cards
// still render with their section's fallback glyph.
func CheckIcons(site string, l lang.Tag, d *Document) []ParityIssue {
	if d == nil {
		return nil
	}
	var issues []ParityIssue
	flag := func(section string, i int, key string) {
		if key == "" || icons.Known(key) {
			return
		}
		issues = append(issues, ParityIssue{
			Site:    site,
			Section: section,
			Detail:  fmt.Sprintf("%s item %d unknown icon %q", l, i, key),
		})
	}
	for i, it := range d.FocusAreas {
		flag(KeyFocusAreas, i, it.Icon)
	}
	for _, key := range SectionKeys() {
		if s := d.Section(key); s != nil {
			for i, it := range s.Items {
				flag(key, i, it.Icon)
			}
		}
	}
	if d.ContactInfo != nil {
		for i, in := range d.ContactInfo.Inquiries {
			flag(KeyContactInfo, i, in.Icon)
		}
	}
	return issues
}

// UnknownIcons runs CheckIcons over both languages of every site.
func (s *Store) UnknownIcons() []ParityIssue {
	var out []ParityIssue
	for _, id := range s.order {
		e := s.sites[id]
		for _, l := range lang.All() {
			out = append(out, CheckIcons(id, l, e.docs[l])...)
		}
	}
	return out
}
