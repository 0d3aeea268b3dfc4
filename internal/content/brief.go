package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"finitefield.org/landing-web/internal/lang"
)

type briefFrontMatter struct {
	Title string `yaml:"title"`
}

// readBrief loads brief.<lang>.md. A missing file means the site has no project
// dialog in that language.
func readBrief(fsys fs.FS, dir string, l lang.Tag) (*Brief, error) {
	file := path.Join(dir, "brief."+l.String()+".md")
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("content: %w", err)
	}
	fm, body := splitFrontMatter(string(data))
	front := briefFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return nil, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	return &Brief{
		Title: strings.TrimSpace(front.Title),
		Body:  body,
	}, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}
