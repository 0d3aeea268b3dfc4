package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
)

//go:embed all:sites
var embedded embed.FS

const sitesDir = "sites"

// Embedded returns the site documents shipped with the binary.
func Embedded() fs.FS { return embedded }

// ErrUnknownSite is returned when resolving a site id that was never loaded.
var ErrUnknownSite = errors.New("content: unknown site")

// Site is the language-independent description of a landing page (sites/<id>/site.yaml).
type Site struct {
	ID         string `yaml:"id"`
	BaseURL    string `yaml:"baseURL"`
	ThemeColor string `yaml:"themeColor"`
	Logo       string `yaml:"logo"`
	OGImage    string `yaml:"ogImage"`
	Favicon    string `yaml:"favicon"`
	// Chat toggles the floating chat button and chat dialog.
	Chat bool `yaml:"chat"`
}

// Pair is what a renderer needs for one language: the content and the chrome text.
type Pair struct {
	Site    Site
	Lang    lang.Tag
	Content *Document
	UI      i18n.Text
}

type siteEntry struct {
	site Site
	docs map[lang.Tag]*Document
	ui   *i18n.Bundle
}

// Store holds every site's documents. It is immutable after Load and safe for
// concurrent use.
type Store struct {
	sites map[string]*siteEntry
	order []string
}

// Load reads every sites/<id>/ directory of fsys. chrome supplies the strings shared
// by all sites; each site's ui.<lang>.json overrides them.
func Load(fsys fs.FS, chrome *i18n.Bundle) (*Store, error) {
	entries, err := fs.ReadDir(fsys, sitesDir)
	if err != nil {
		return nil, fmt.Errorf("content: read sites: %w", err)
	}
	s := &Store{sites: map[string]*siteEntry{}}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		entry, err := loadSite(fsys, path.Join(sitesDir, e.Name()), chrome)
		if err != nil {
			return nil, err
		}
		if _, dup := s.sites[entry.site.ID]; dup {
			return nil, fmt.Errorf("content: duplicate site id %q", entry.site.ID)
		}
		s.sites[entry.site.ID] = entry
		s.order = append(s.order, entry.site.ID)
	}
	if len(s.order) == 0 {
		return nil, fmt.Errorf("content: no sites under %s", sitesDir)
	}
	sort.Strings(s.order)
	return s, nil
}

func loadSite(fsys fs.FS, dir string, chrome *i18n.Bundle) (*siteEntry, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, "site.yaml"))
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", dir, err)
	}
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("content: parse %s/site.yaml: %w", dir, err)
	}
	site.ID = strings.TrimSpace(site.ID)
	if site.ID == "" {
		site.ID = path.Base(dir)
	}

	entry := &siteEntry{site: site, docs: map[lang.Tag]*Document{}}
	uiFiles := map[lang.Tag]string{}
	for _, l := range lang.All() {
		doc, err := readDocument(fsys, dir, l)
		if err != nil {
			return nil, err
		}
		entry.docs[l] = doc
		uiPath := path.Join(dir, "ui."+l.String()+".json")
		if _, err := fs.Stat(fsys, uiPath); err == nil {
			uiFiles[l] = uiPath
		}
	}

	base := chrome
	if base == nil {
		base, err = i18n.Load(i18n.Embedded(), "locales", lang.Default)
		if err != nil {
			return nil, err
		}
	}
	siteUI, err := i18n.LoadFiles(fsys, uiFiles, base.Fallback())
	if err != nil {
		return nil, fmt.Errorf("content: %s ui text: %w", site.ID, err)
	}
	entry.ui = base.Overlay(siteUI)
	return entry, nil
}

func readDocument(fsys fs.FS, dir string, l lang.Tag) (*Document, error) {
	file := path.Join(dir, "content."+l.String()+".yaml")
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", file, err)
	}
	brief, err := readBrief(fsys, dir, l)
	if err != nil {
		return nil, err
	}
	doc.Brief = brief
	return &doc, nil
}

// Sites returns every loaded site, ordered by id.
func (s *Store) Sites() []Site {
	out := make([]Site, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.sites[id].site)
	}
	return out
}

// IDs returns the site ids in sorted order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// Site returns the site registered under id.
func (s *Store) Site(id string) (Site, bool) {
	e, ok := s.sites[id]
	if !ok {
		return Site{}, false
	}
	return e.site, true
}

// Resolve selects the content document and chrome text for l. It is total over the
// language enumeration; only an unknown site id fails.
func (s *Store) Resolve(siteID string, l lang.Tag) (Pair, error) {
	e, ok := s.sites[siteID]
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", ErrUnknownSite, siteID)
	}
	if l != lang.ZH && l != lang.EN {
		l = lang.Default
	}
	return Pair{
		Site:    e.site,
		Lang:    l,
		Content: e.docs[l],
		UI:      e.ui.Text(l),
	}, nil
}

// UI returns the merged chrome bundle of a site.
func (s *Store) UI(siteID string) (*i18n.Bundle, bool) {
	e, ok := s.sites[siteID]
	if !ok {
		return nil, false
	}
	return e.ui, true
}
