// Package static holds the stylesheet, scripts and images served under /assets.
package static

import (
	"embed"
	"io/fs"
)

//go:embed css js img
var files embed.FS

// FS returns the embedded asset tree rooted at css/, js/ and img/.
func FS() fs.FS { return files }

// Path is the URL prefix the assets are mounted on.
const Path = "/assets"

// URL returns the public URL of an asset path such as "css/site.css".
func URL(name string) string { return Path + "/" + name }
