package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/icons"
)

// ContactSection renders the contact details and one mailto link per inquiry.
func ContactSection(v *View) g.Node {
	c := v.Content.ContactInfo
	if c == nil {
		return nil
	}
	var links []g.Node
	if c.Email != "" {
		for _, inq := range c.Inquiries {
			links = append(links, A(
				Class("btn btn--outline"),
				Href(mailto(c.Email, inq.Subject)),
				Icon(icons.ResolveOr(inq.Icon, icons.Mail), "", ""),
				g.Text(inq.Label),
			))
		}
	}
	return sectionShell(v, content.KeyContactInfo, false, "",
		Div(
			Class("contact"),
			g.If(c.Email != "", contactRow(icons.Mail, v.UI.T("contact.email"),
				A(Href(mailto(c.Email, "")), g.Text(c.Email)))),
			g.If(c.Phone != "", contactRow(icons.Phone, v.UI.T("contact.phone"),
				A(Href("tel:"+c.Phone), g.Text(c.Phone)))),
			g.If(c.Address != "", contactRow(icons.MapPin, v.UI.T("contact.address"),
				g.Text(c.Address))),
			g.If(len(links) > 0, Div(Class("contact__links"), g.Group(links))),
		),
	)
}

func contactRow(glyph icons.Glyph, label string, value g.Node) g.Node {
	return P(
		Class("contact__row"),
		Icon(glyph, "", label),
		value,
	)
}
