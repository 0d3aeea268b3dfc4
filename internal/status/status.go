package status

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/format"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/middleware"
)

const (
	StateOperational = "operational"
	StateDegraded    = "degraded"
)

// Summary is the content health report served at /status.json.
type Summary struct {
	State      string      `json:"state"`
	StateLabel string      `json:"state_label"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Updated    string      `json:"updated"`
	Components []Component `json:"components"`
	Issues     []string    `json:"issues,omitempty"`
}

// Component is the status of one landing site.
type Component struct {
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Languages []string `json:"languages"`
	Sections  []string `json:"sections"`
}

// Summarize reports every site of store, with labels from chrome in l. A site
// whose language pair drifted is degraded; the pages still render.
func Summarize(store *content.Store, chrome *i18n.Bundle, l lang.Tag, loadedAt time.Time) Summary {
	issues := store.Parity()
	drift := map[string]bool{}
	summary := Summary{State: StateOperational, UpdatedAt: loadedAt.UTC()}
	for _, is := range issues {
		drift[is.Site] = true
		summary.Issues = append(summary.Issues, is.String())
	}
	for _, site := range store.Sites() {
		c := Component{Name: site.ID, Status: StateOperational}
		if drift[site.ID] {
			c.Status = StateDegraded
			summary.State = StateDegraded
		}
		for _, tag := range lang.All() {
			c.Languages = append(c.Languages, tag.String())
		}
		if pair, err := store.Resolve(site.ID, lang.Default); err == nil {
			c.Sections = pair.Content.Present()
		}
		summary.Components = append(summary.Components, c)
	}
	sort.Strings(summary.Issues)
	summary.StateLabel = chrome.T(l, "status."+summary.State)
	summary.Updated = format.Date(summary.UpdatedAt, l)
	return summary
}

// Handler serves the summary as JSON in the request language.
func Handler(store *content.Store, chrome *i18n.Bundle, loadedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary := Summarize(store, chrome, middleware.Lang(r), loadedAt)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(summary)
	}
}
