package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/format"
)

// PageFooter renders the copyright line and the company focus.
func PageFooter(v *View) g.Node {
	info := v.Content.CompanyInfo
	return Footer(
		Class("page-footer"),
		P(g.Textf("© %s %s. %s", format.Year(v.Now), info.Name, v.UI.T("footer.rights"))),
		g.If(info.Focus != "", P(g.Text(info.Focus))),
	)
}
