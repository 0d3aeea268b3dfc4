package components

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/modal"
)

func buildView(t *testing.T, l lang.Tag, doc *content.Document) *View {
	t.Helper()

	chrome, err := i18n.Load(i18n.Embedded(), "locales", lang.Default)
	require.NoError(t, err, "chrome strings must load")
	return &View{
		Site:    content.Site{ID: "demo", ThemeColor: "#8B5A3C", Chat: true},
		Lang:    l,
		Content: doc,
		UI:      chrome.Text(l),
		Now:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Scroll:  modal.NewDocument(""),
		Links: Links{
			Toggle:   "/lang/toggle",
			Next:     "/",
			Close:    "/",
			Modal:    map[modal.Name]string{modal.Chat: "/?modal=chat", modal.Project: "/?modal=project"},
			Fragment: map[modal.Name]string{modal.Chat: "/fragments/modal/chat?site=demo", modal.Project: "/fragments/modal/project?site=demo"},
		},
	}
}

func renderNode(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()

	require.NotNil(t, n, "renderer must produce markup")
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf), "node must render without error")
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, "html must parse")
	return doc
}

func items(icon string, names ...string) []content.Item {
	out := make([]content.Item, 0, len(names))
	for _, n := range names {
		out = append(out, content.Item{Icon: icon, Name: n, Description: n + " text"})
	}
	return out
}

func TestFocusAreaRendersGlyphInBothLanguages(t *testing.T) {
	t.Parallel()

	for l, name := range map[lang.Tag]string{lang.ZH: "品牌定位", lang.EN: "Brand Positioning"} {
		doc := renderNode(t, Hero(buildView(t, l, &content.Document{
			CompanyInfo: content.CompanyInfo{Name: "Demo"},
			FocusAreas:  []content.Item{{Icon: "Target", Name: name, Color: "#8B5A3C"}},
		})))

		cards := doc.Find(`[data-section="focusAreas"] .card`)
		require.Equal(t, 1, cards.Length(), "exactly one focus card for %s", l)
		require.Equal(t, 1, cards.Find(`[data-icon="lucide:target"]`).Length())
		require.Equal(t, name, strings.TrimSpace(cards.Find(".card__title").Text()))
		require.Contains(t, cards.Find(".card__icon").AttrOr("style", ""), "#8B5A3C15")
	}
}

func TestAbsentSectionsRenderNothing(t *testing.T) {
	t.Parallel()

	v := buildView(t, lang.ZH, &content.Document{CompanyInfo: content.CompanyInfo{Name: "Demo"}})
	renderers := map[string]func(*View) g.Node{
		"advantages":       Advantages,
		"brandPositioning": BrandPositioning,
		"brandIdentity":    BrandIdentity,
		"productValue":     ProductValue,
		"scenarioDemand":   ScenarioDemand,
		"brandSoul":        BrandSoul,
		"brandNarrative":   BrandNarrative,
		"caseStudies":      CaseStudies,
		"contactInfo":      ContactSection,
	}
	for key, render := range renderers {
		require.Nil(t, render(v), "%s must render nothing when absent", key)
	}
	require.Zero(t, renderNode(t, Hero(v)).Find(`[data-section="focusAreas"]`).Length())
	require.Nil(t, SectionNav(v), "no sections means no navigation")
}

func TestUnknownIconFallsBackPerSection(t *testing.T) {
	t.Parallel()

	doc := &content.Document{
		Advantages:     &content.Section{Items: items("Nope", "a")},
		BrandIdentity:  &content.Section{Items: items("Nope", "a")},
		ProductValue:   &content.Section{Items: items("Nope", "a")},
		ScenarioDemand: &content.Section{Items: items("Nope", "a")},
		BrandSoul:      &content.Section{Items: items("Nope", "a")},
		BrandNarrative: &content.Section{Items: items("Nope", "a")},
	}
	v := buildView(t, lang.EN, doc)
	cases := []struct {
		render func(*View) g.Node
		want   string
	}{
		{Advantages, "lucide:target"},
		{BrandIdentity, "lucide:image"},
		{ProductValue, "lucide:star"},
		{ScenarioDemand, "lucide:zap"},
		{BrandSoul, "lucide:heart"},
		{BrandNarrative, "lucide:file-text"},
	}
	for _, tc := range cases {
		got := renderNode(t, tc.render(v)).Find(".card__icon [data-icon]").AttrOr("data-icon", "")
		require.Equal(t, tc.want, got)
	}
}

func TestCardsStaggerByIndex(t *testing.T) {
	t.Parallel()

	v := buildView(t, lang.ZH, &content.Document{
		CompanyInfo: content.CompanyInfo{Name: "Demo"},
		FocusAreas:  items("Target", "a", "b"),
		Advantages:  &content.Section{Items: items("Zap", "a", "b", "c")},
		BrandSoul:   &content.Section{Items: items("Heart", "a", "b", "c")},
	})

	var focus []string
	renderNode(t, Hero(v)).Find(`[data-section="focusAreas"] .card`).Each(func(_ int, s *goquery.Selection) {
		focus = append(focus, s.AttrOr("style", ""))
	})
	require.Equal(t, []string{"animation-delay:700ms", "animation-delay:800ms"}, focus)

	var adv []string
	renderNode(t, Advantages(v)).Find(".card").Each(func(_ int, s *goquery.Selection) {
		adv = append(adv, s.AttrOr("style", ""))
	})
	require.Equal(t, []string{"animation-delay:0ms", "animation-delay:100ms", "animation-delay:200ms"}, adv)

	var soul, dirs []string
	renderNode(t, BrandSoul(v)).Find(".card").Each(func(_ int, s *goquery.Selection) {
		soul = append(soul, s.AttrOr("style", ""))
		dirs = append(dirs, s.AttrOr("data-animate", ""))
	})
	require.Equal(t, []string{"animation-delay:0ms", "animation-delay:200ms", "animation-delay:400ms"}, soul)
	require.Equal(t, []string{"slide-left", "slide-right", "slide-left"}, dirs)
}

func TestBrandPositioningLabelsAndLists(t *testing.T) {
	t.Parallel()

	agents := []content.Item{
		{ID: "market", Icon: "TrendingUp", Name: "市场分析", Input: []string{"行业报告", "销售数据"}, Output: []string{"用户画像"}},
		{ID: "competitor", Icon: "Search", Name: "竞品分析"},
	}
	doc := renderNode(t, BrandPositioning(buildView(t, lang.ZH, &content.Document{
		BrandPositioning: &content.Section{Items: agents},
	})))

	labels := doc.Find(".card__label")
	require.Equal(t, "Agent 1", strings.TrimSpace(labels.Eq(0).Text()))
	require.Equal(t, "Agent 2", strings.TrimSpace(labels.Eq(1).Text()))
	require.Equal(t, "行业报告、销售数据", strings.TrimSpace(doc.Find(`[data-agent="market"] dd`).First().Text()))
	require.Zero(t, doc.Find(`[data-agent="competitor"] dl`).Length(), "no inputs or outputs means no list")
}

func TestBrandNarrativeStepLabels(t *testing.T) {
	t.Parallel()

	steps := []content.Item{
		{Name: "Plan", Step: 1, Output: []string{"Narrative plan"}, Templates: []string{"Story", "Script"}},
		{Name: "Write", Step: 2},
	}
	doc := renderNode(t, BrandNarrative(buildView(t, lang.EN, &content.Document{
		BrandNarrative: &content.Section{Items: steps},
	})))

	require.Equal(t, "Step 1", strings.TrimSpace(doc.Find(`[data-step="1"] .card__label`).Text()))
	require.Equal(t, "Step 2", strings.TrimSpace(doc.Find(`[data-step="2"] .card__label`).Text()))
	require.Equal(t, 2, doc.Find(`[data-step="1"] .chip`).Length())
}

func TestSectionHeadPrefersContentSubtitle(t *testing.T) {
	t.Parallel()

	v := buildView(t, lang.EN, &content.Document{
		ScenarioDemand: &content.Section{Subtitle: "From the document", Items: items("Zap", "a")},
	})
	doc := renderNode(t, ScenarioDemand(v))
	require.Equal(t, "From the document", strings.TrimSpace(doc.Find(".section__subtitle").Text()))
	// the badge falls back to the navigation label
	require.Equal(t, "Scenarios", strings.TrimSpace(doc.Find(".badge").Text()))
}

func TestMailtoEncodesSubject(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mailto:hi@example.com", mailto("hi@example.com", ""))
	require.Equal(t, "mailto:hi@example.com?subject=Brand%20Positioning%20%26%20More", mailto("hi@example.com", "Brand Positioning & More"))
	require.Equal(t, "mailto:hi@example.com?subject=%E5%93%81%E7%89%8C", mailto("hi@example.com", "品牌"))
}

func TestContactSectionInquiries(t *testing.T) {
	t.Parallel()

	doc := renderNode(t, ContactSection(buildView(t, lang.EN, &content.Document{
		ContactInfo: &content.ContactInfo{
			Email:     "hi@example.com",
			Inquiries: []content.Inquiry{{Icon: "Target", Label: "Positioning", Subject: "Positioning inquiry"}},
		},
	})))
	link := doc.Find(".contact__links a")
	require.Equal(t, 1, link.Length())
	require.Equal(t, "mailto:hi@example.com?subject=Positioning%20inquiry", link.AttrOr("href", ""))
	require.Zero(t, doc.Find(`a[href^="tel:"]`).Length(), "no phone means no phone row")
}

func TestOpenDialogLocksBody(t *testing.T) {
	t.Parallel()

	v := buildView(t, lang.ZH, &content.Document{CompanyInfo: content.CompanyInfo{Name: "Demo"}})
	ctrl := modal.NewController(modal.Chat, v.Scroll)
	v.Open = ctrl
	ctrl.Open()

	doc := renderNode(t, Layout(v, ModalRoot(v)))
	body := doc.Find("body")
	require.Contains(t, body.AttrOr("style", ""), "overflow:hidden")
	require.Equal(t, "true", body.AttrOr("data-scroll-locked", ""))
	dlg := doc.Find(`#modal-root [data-modal="chat"]`)
	require.Equal(t, 1, dlg.Length())
	require.Equal(t, "true", dlg.AttrOr("aria-modal", ""))

	ctrl.Close(modal.Escape)
	doc = renderNode(t, Layout(v, ModalRoot(v)))
	require.NotContains(t, doc.Find("body").AttrOr("style", ""), "overflow")
	require.Zero(t, doc.Find("#modal-root [data-modal]").Length())
}

func TestStaticPageShipsDialogTemplates(t *testing.T) {
	t.Parallel()

	v := buildView(t, lang.EN, &content.Document{
		CompanyInfo: content.CompanyInfo{Name: "Demo"},
		Brief:       &content.Brief{Title: "About", Body: "# About"},
	})
	v.Brief = "<h1>About</h1>"
	v.Static = true
	v.Links = Links{Toggle: "../zh/index.html", Close: "#"}

	doc := renderNode(t, Layout(v, LanguageToggle(v), Hero(v), FloatingChatButton(v), ModalRoot(v)))
	require.Equal(t, 1, doc.Find(`template[data-modal-template="chat"]`).Length())
	require.Equal(t, 1, doc.Find(`template[data-modal-template="project"]`).Length())
	require.Equal(t, "#project", doc.Find(`.hero__actions [data-modal-open="project"]`).AttrOr("href", ""))
	_, hx := doc.Find(`.fab`).Attr("hx-get")
	require.False(t, hx, "exported pages carry no htmx endpoints")

	toggle := doc.Find("a.lang-toggle")
	require.Equal(t, "../zh/index.html", toggle.AttrOr("href", ""))
	require.Equal(t, "zh-CN", toggle.AttrOr("hreflang", ""))
	require.Zero(t, doc.Find(`script[src*="htmx"]`).Length())
}

func TestFooterYearAndFocus(t *testing.T) {
	t.Parallel()

	doc := renderNode(t, PageFooter(buildView(t, lang.EN, &content.Document{
		CompanyInfo: content.CompanyInfo{Name: "Demo", Focus: "Wine brands"},
	})))
	text := doc.Find(".page-footer").Text()
	require.Contains(t, text, "© 2025 Demo. All rights reserved.")
	require.Contains(t, text, "Wine brands")
}

func TestModalDialogFollowsSiteOffer(t *testing.T) {
	t.Parallel()

	v := buildView(t, lang.EN, &content.Document{CompanyInfo: content.CompanyInfo{Name: "Demo"}})
	doc := renderNode(t, ModalDialog(v, modal.Chat))
	require.Equal(t, 1, doc.Find(`[data-modal="chat"]`).Length())

	require.Nil(t, ModalDialog(v, modal.Project), "no brief, no project dialog")
	require.Nil(t, ModalDialog(v, modal.Name("pricing")))

	v.Site.Chat = false
	require.Nil(t, ModalDialog(v, modal.Chat))
}
