package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"finitefield.org/landing-web/internal/lang"
)

//go:embed locales/*.json
var embedded embed.FS

// Embedded returns the chrome strings shipped with the binary (locales/<tag>.json).
func Embedded() fs.FS { return embedded }

// Bundle holds one flattened string table per language. Nested JSON objects are
// addressed with dotted keys ("nav.focusAreas").
type Bundle struct {
	dict     map[lang.Tag]map[string]string
	fallback lang.Tag
	matcher  language.Matcher
}

// Load reads <dir>/<tag>.json for every supported tag. The fallback language must be
// present; other languages may be missing.
func Load(fsys fs.FS, dir string, fallback lang.Tag) (*Bundle, error) {
	if fallback == "" {
		fallback = lang.Default
	}
	b := newBundle(fallback)
	for _, l := range lang.All() {
		raw, err := fs.ReadFile(fsys, path.Join(dir, l.String()+".json"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && l != fallback {
				continue
			}
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		m, err := flatten(raw)
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	return b, nil
}

// LoadFiles reads a language pair from explicit paths, keyed by tag.
func LoadFiles(fsys fs.FS, files map[lang.Tag]string, fallback lang.Tag) (*Bundle, error) {
	b := newBundle(fallback)
	for l, p := range files {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		m, err := flatten(raw)
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", p, err)
		}
		b.dict[l] = m
	}
	return b, nil
}

func newBundle(fallback lang.Tag) *Bundle {
	all := lang.All()
	tags := make([]language.Tag, 0, len(all))
	// the matcher falls back to its first entry, so the fallback goes first
	tags = append(tags, fallback.Language())
	for _, l := range all {
		if l != fallback {
			tags = append(tags, l.Language())
		}
	}
	return &Bundle{
		dict:     map[lang.Tag]map[string]string{},
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
	}
}

func flatten(raw []byte) (map[string]string, error) {
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	out := map[string]string{}
	var walk func(prefix string, v any)
	walk = func(prefix string, v any) {
		switch tv := v.(type) {
		case map[string]any:
			for k, child := range tv {
				key := k
				if prefix != "" {
					key = prefix + "." + k
				}
				walk(key, child)
			}
		case string:
			out[prefix] = tv
		case nil:
		default:
			out[prefix] = fmt.Sprint(tv)
		}
	}
	walk("", tree)
	return out, nil
}

// Overlay returns a new bundle where o's strings override b's for every language.
func (b *Bundle) Overlay(o *Bundle) *Bundle {
	out := newBundle(b.fallback)
	for l, m := range b.dict {
		cp := make(map[string]string, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out.dict[l] = cp
	}
	if o == nil {
		return out
	}
	for l, m := range o.dict {
		dst, ok := out.dict[l]
		if !ok {
			dst = map[string]string{}
			out.dict[l] = dst
		}
		for k, v := range m {
			dst[k] = v
		}
	}
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() lang.Tag { return b.fallback }

// Has reports whether key is defined for l (without falling back).
func (b *Bundle) Has(l lang.Tag, key string) bool {
	_, ok := b.dict[l][key]
	return ok
}

// T returns translation for key in l, falling back to the default language and finally key.
func (b *Bundle) T(l lang.Tag, key string) string {
	if m, ok := b.dict[l]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Keys returns the sorted keys defined for l.
func (b *Bundle) Keys(l lang.Tag) []string {
	m := b.dict[l]
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Text binds the bundle to one language.
func (b *Bundle) Text(l lang.Tag) Text { return Text{bundle: b, lang: l} }

// Resolve chooses the best supported language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) lang.Tag {
	if strings.TrimSpace(acceptLang) == "" {
		return b.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	matched, _, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	base, _ := matched.Base()
	return lang.ParseOr(base.String(), b.fallback)
}

// MissingKeys lists keys present in one language but not the other.
func (b *Bundle) MissingKeys() map[lang.Tag][]string {
	out := map[lang.Tag][]string{}
	for _, l := range lang.All() {
		other := l.Toggle()
		for _, k := range b.Keys(other) {
			if !b.Has(l, k) {
				out[l] = append(out[l], k)
			}
		}
	}
	return out
}

// Text is a Bundle viewed through a single language; it is what renderers receive.
type Text struct {
	bundle *Bundle
	lang   lang.Tag
}

// Lang returns the bound language.
func (t Text) Lang() lang.Tag { return t.lang }

// T looks up key, following the bundle's fallback rules.
func (t Text) T(key string) string {
	if t.bundle == nil {
		return key
	}
	return t.bundle.T(t.lang, key)
}

// Has reports whether key is defined in the bound language.
func (t Text) Has(key string) bool {
	return t.bundle != nil && t.bundle.Has(t.lang, key)
}

// Or returns the translation for key, or def when the key is undefined everywhere.
func (t Text) Or(key, def string) string {
	if v := t.T(key); v != key {
		return v
	}
	return def
}
