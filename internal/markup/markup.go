// Package markup turns the Markdown authored in content documents into sanitized HTML.
package markup

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	once     sync.Once
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
)

func setup() {
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	policy = bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
}

// Render converts Markdown to HTML and strips anything outside the UGC allow list.
func Render(src string) (string, error) {
	once.Do(setup)
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markup: convert: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
