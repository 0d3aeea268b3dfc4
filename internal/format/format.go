package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finitefield.org/landing-web/internal/lang"
)

// JoinList joins display items with the list separator of the language.
// Example: JoinList(lang.ZH, []string{"a", "b"}) => "a、b"
func JoinList(l lang.Tag, items []string) string {
	sep := ", "
	if l == lang.ZH {
		sep = "、"
	}
	return strings.Join(items, sep)
}

// Ordinal replaces the "{n}" placeholder of a label with a 1-based position.
func Ordinal(label string, index int) string {
	return strings.ReplaceAll(label, "{n}", strconv.Itoa(index+1))
}

// Stagger is the entrance-animation schedule of a card grid: the card at index i
// starts Base + i*Step after the section enters the viewport.
type Stagger struct {
	Base time.Duration
	Step time.Duration
}

// Delay returns the animation delay for the card at index.
func (s Stagger) Delay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return s.Base + time.Duration(index)*s.Step
}

// CSS renders the delay for index as an inline style declaration.
func (s Stagger) CSS(index int) string {
	return fmt.Sprintf("animation-delay:%dms", s.Delay(index).Milliseconds())
}

// Year formats the copyright year.
func Year(t time.Time) string {
	return strconv.Itoa(t.Year())
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, l lang.Tag) string {
	switch l {
	case lang.ZH:
		return t.Format("2006年1月2日")
	default:
		return t.Format("Jan 2, 2006")
	}
}
