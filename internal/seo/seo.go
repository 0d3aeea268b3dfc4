package seo

import (
	"strings"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/lang"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	SiteName    string
	Locale      string
	URL         string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Canonical   string
	ThemeColor  string
	Favicon     string
	OG          OpenGraph
	Twitter     Twitter
}

// ogLocale maps a tag onto the OpenGraph locale format.
func ogLocale(l lang.Tag) string {
	if l == lang.EN {
		return "en_US"
	}
	return "zh_CN"
}

// Build derives the page metadata from a site's content document. baseURL
// overrides the site's own base URL when set; path is the canonical request path.
func Build(site content.Site, doc *content.Document, l lang.Tag, baseURL, path string) Meta {
	if doc == nil {
		doc = &content.Document{}
	}
	m := doc.Meta
	base := strings.TrimRight(site.BaseURL, "/")
	if baseURL != "" {
		base = strings.TrimRight(baseURL, "/")
	}
	title := firstNonEmpty(m.Title, doc.CompanyInfo.Name)
	desc := firstNonEmpty(m.Description, doc.CompanyInfo.Subtitle)
	canonical := ""
	if base != "" {
		canonical = base + path
	}
	image := absolute(base, site.OGImage)
	return Meta{
		Title:       title,
		Description: desc,
		Keywords:    strings.Join(m.Keywords, ", "),
		Author:      m.Author,
		Canonical:   canonical,
		ThemeColor:  site.ThemeColor,
		Favicon:     site.Favicon,
		OG: OpenGraph{
			Title:       firstNonEmpty(m.OGTitle, title),
			Description: firstNonEmpty(m.OGDescription, desc),
			Image:       image,
			Type:        "website",
			SiteName:    firstNonEmpty(m.SiteName, doc.CompanyInfo.Name),
			Locale:      ogLocale(l),
			URL:         canonical,
		},
		Twitter: Twitter{Card: "summary_large_image", Image: image},
	}
}

func absolute(base, p string) string {
	if p == "" || base == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return base + "/" + strings.TrimLeft(p, "/")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
