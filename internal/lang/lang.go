// Package lang holds the active-language state shared by the whole render tree.
package lang

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Tag is one of the two languages the sites are authored in.
type Tag string

const (
	ZH Tag = "zh"
	EN Tag = "en"

	// Default is the language used when nothing else selects one.
	Default = ZH
)

// All lists the supported tags in authoring order.
func All() []Tag { return []Tag{ZH, EN} }

// Toggle returns the other language.
func (t Tag) Toggle() Tag {
	if t == EN {
		return ZH
	}
	return EN
}

// String implements fmt.Stringer.
func (t Tag) String() string { return string(t) }

// HTMLLang returns the value used for the document lang attribute.
func (t Tag) HTMLLang() string {
	if t == EN {
		return "en"
	}
	return "zh-CN"
}

// Language maps the tag onto its x/text representation.
func (t Tag) Language() language.Tag {
	if t == EN {
		return language.English
	}
	return language.SimplifiedChinese
}

// Parse accepts a BCP 47 tag ("zh", "zh-CN", "en-US", ...) and reduces it to a Tag.
func Parse(s string) (Tag, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	parsed, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := parsed.Base()
	switch base.String() {
	case "zh":
		return ZH, true
	case "en":
		return EN, true
	}
	return "", false
}

// ParseOr parses s and returns fallback when it is not a supported language.
func ParseOr(s string, fallback Tag) Tag {
	if t, ok := Parse(s); ok {
		return t
	}
	return fallback
}

// State is the per-request language holder. Handlers read it and the toggle
// endpoint flips it before persisting the new value.
type State struct {
	tag Tag
}

// NewState returns a state initialised to tag (Default when tag is empty).
func NewState(tag Tag) *State {
	if tag == "" {
		tag = Default
	}
	return &State{tag: tag}
}

// Language returns the active tag.
func (s *State) Language() Tag {
	if s == nil || s.tag == "" {
		return Default
	}
	return s.tag
}

// Toggle flips the active tag and returns the new value.
func (s *State) Toggle() Tag {
	s.tag = s.Language().Toggle()
	return s.tag
}

type ctxKey struct{}

// WithState stores the language state on the context.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// StateFrom returns the state stored on ctx, or nil.
func StateFrom(ctx context.Context) *State {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(ctxKey{}).(*State)
	return s
}

// FromContext returns the active tag for ctx, Default when none was resolved.
func FromContext(ctx context.Context) Tag {
	return StateFrom(ctx).Language()
}
