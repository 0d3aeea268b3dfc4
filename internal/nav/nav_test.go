package nav

import (
	"testing"

	"finitefield.org/landing-web/internal/content"
)

func TestBuildSkipsAbsentSections(t *testing.T) {
	doc := &content.Document{
		FocusAreas:  []content.Item{{Name: "x"}},
		CaseStudies: &content.Section{},
		ContactInfo: &content.ContactInfo{Email: "a@b.c"},
	}
	items := Build(doc, content.KeyCaseStudies)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(items), items)
	}
	want := []string{"#focusAreas", "#caseStudies", "#contactInfo"}
	for i, it := range items {
		if it.Href != want[i] {
			t.Errorf("item %d: got %s want %s", i, it.Href, want[i])
		}
		if it.Active != (it.Href == "#caseStudies") {
			t.Errorf("item %d: unexpected active %v", i, it.Active)
		}
	}
}

func TestBuildNilDocument(t *testing.T) {
	if items := Build(nil, ""); len(items) != 0 {
		t.Fatalf("expected no items, got %+v", items)
	}
}
