package seo

import (
	"encoding/json"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/lang"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns an Organization schema with an optional contact point.
func Organization(name, url, logoURL string, contact *content.ContactInfo) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" { m["url"] = url }
	if logoURL != "" { m["logo"] = logoURL }
	if contact != nil && (contact.Email != "" || contact.Phone != "") {
		cp := map[string]any{"@type": "ContactPoint", "contactType": "customer service"}
		if contact.Email != "" { cp["email"] = contact.Email }
		if contact.Phone != "" { cp["telephone"] = contact.Phone }
		m["contactPoint"] = cp
	}
	return m
}

// WebSite returns a minimal WebSite schema tagged with the page language.
func WebSite(name, url string, l lang.Tag) map[string]any {
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       name,
		"inLanguage": l.HTMLLang(),
	}
	if url != "" { m["url"] = url }
	return m
}
