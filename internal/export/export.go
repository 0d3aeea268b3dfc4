// Package export renders every site and language to static HTML files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/components"
	"finitefield.org/landing-web/internal/handlers"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/modal"
	"finitefield.org/landing-web/internal/static"
)

// Exporter writes <out>/<site>/<lang>/index.html for every site plus the assets
// under <out>/assets.
type Exporter struct {
	pages  *handlers.Pages
	logger *zap.Logger
}

// New returns an exporter over pages.
func New(pages *handlers.Pages, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{pages: pages, logger: logger}
}

// Result lists the files written, relative to the output directory.
type Result struct {
	Files []string
}

// Export renders the given sites, or every site when none are named.
func (e *Exporter) Export(ctx context.Context, out string, siteIDs ...string) (Result, error) {
	var res Result
	if len(siteIDs) == 0 {
		for _, s := range e.pages.Store().Sites() {
			siteIDs = append(siteIDs, s.ID)
		}
	}
	for _, id := range siteIDs {
		for _, l := range lang.All() {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			rel := path.Join(id, l.String(), "index.html")
			v, err := e.pages.BuildView(id, l, handlers.ViewOptions{
				Path:   "/" + id + "/" + l.String() + "/",
				Static: true,
				Links:  staticLinks(l),
			})
			if err != nil {
				return res, fmt.Errorf("export %s: %w", rel, err)
			}
			if err := writeNode(filepath.Join(out, filepath.FromSlash(rel)), handlers.Compose(v)); err != nil {
				return res, err
			}
			res.Files = append(res.Files, rel)
			e.logger.Debug("exported page", zap.String("site", id), zap.String("lang", l.String()))
		}
		rel := path.Join(id, "index.html")
		if err := writeNode(filepath.Join(out, filepath.FromSlash(rel)), redirect(lang.Default.String()+"/index.html")); err != nil {
			return res, err
		}
		res.Files = append(res.Files, rel)
	}

	assets, err := copyAssets(out)
	if err != nil {
		return res, err
	}
	res.Files = append(res.Files, assets...)
	sort.Strings(res.Files)
	e.logger.Info("export finished", zap.String("out", out), zap.Int("files", len(res.Files)))
	return res, nil
}

// staticLinks point the toggle at the sibling language directory. Dialogs open
// from in-page templates, so no modal URLs are needed.
func staticLinks(l lang.Tag) *components.Links {
	return &components.Links{
		Toggle:   "../" + l.Toggle().String() + "/index.html",
		Close:    "#",
		Modal:    map[modal.Name]string{},
		Fragment: map[modal.Name]string{},
	}
}

func redirect(target string) g.Node {
	return g.Group{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Head(
				Meta(Charset("utf-8")),
				Meta(g.Attr("http-equiv", "refresh"), Content("0; url="+target)),
				Link(Rel("canonical"), Href(target)),
			),
			Body(A(Href(target), g.Text(target))),
		),
	}
}

func writeNode(file string, node g.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", file, err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0o644)
}

func copyAssets(out string) ([]string, error) {
	var files []string
	root := static.FS()
	prefix := path.Base(static.Path)
	err := fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return err
		}
		rel := path.Join(prefix, p)
		dst := filepath.Join(out, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}
	return files, nil
}
