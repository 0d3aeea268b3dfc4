package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/handlers"
)

func newExporter(t *testing.T) *Exporter {
	t.Helper()
	store, err := content.Load(content.Embedded(), nil)
	require.NoError(t, err)
	pages, err := handlers.NewPages(store, config.Config{Sites: config.SiteConfig{Default: "brandai"}})
	require.NoError(t, err)
	return New(pages, nil)
}

func openPage(t *testing.T, file string) *goquery.Document {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func TestExportWritesEveryLanguage(t *testing.T) {
	out := t.TempDir()
	res, err := newExporter(t).Export(context.Background(), out, "brandai")
	require.NoError(t, err)
	require.Contains(t, res.Files, "brandai/zh/index.html")
	require.Contains(t, res.Files, "brandai/en/index.html")
	require.Contains(t, res.Files, "brandai/index.html")
	require.Contains(t, res.Files, "assets/css/site.css")
	require.Contains(t, res.Files, "assets/js/modal.js")

	zh := openPage(t, filepath.Join(out, "brandai", "zh", "index.html"))
	require.Equal(t, "zh-CN", zh.Find("html").AttrOr("lang", ""))
	require.Equal(t, "../en/index.html", zh.Find("a.lang-toggle").AttrOr("href", ""))
	require.Zero(t, zh.Find(`script[src*="htmx"]`).Length())
	require.Zero(t, zh.Find("form").Length(), "exported pages post nowhere")
	require.Equal(t, 1, zh.Find(`template[data-modal-template="chat"]`).Length())
	require.Equal(t, 1, zh.Find(`template[data-modal-template="project"]`).Length())

	en := openPage(t, filepath.Join(out, "brandai", "en", "index.html"))
	require.Equal(t, "../zh/index.html", en.Find("a.lang-toggle").AttrOr("href", ""))
	require.Equal(t, "en", en.Find("html").AttrOr("lang", ""))
}

func TestExportAllSites(t *testing.T) {
	out := t.TempDir()
	res, err := newExporter(t).Export(context.Background(), out)
	require.NoError(t, err)
	for _, site := range []string{"agri", "brandai", "gbox"} {
		_, err := os.Stat(filepath.Join(out, site, "en", "index.html"))
		require.NoError(t, err, site)
	}
	agri := openPage(t, filepath.Join(out, "agri", "zh", "index.html"))
	require.Zero(t, agri.Find("template").Length(), "agri offers no dialogs")
	require.NotEmpty(t, res.Files)
}

func TestExportUnknownSite(t *testing.T) {
	_, err := newExporter(t).Export(context.Background(), t.TempDir(), "missing")
	require.ErrorIs(t, err, content.ErrUnknownSite)
}

func TestExportStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newExporter(t).Export(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
