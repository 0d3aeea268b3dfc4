// Package icons maps the icon keys used in content documents onto renderable glyphs.
// Lookups never fail: unknown keys degrade to a default glyph.
package icons

import (
	"fmt"
	"strings"
)

// Glyph is a lucide icon rendered through the iconify script.
type Glyph struct {
	Key  string // content key, e.g. "Target"
	Name string // iconify name, e.g. "lucide:target"
}

// Class returns the iconify class list for a glyph at the given size classes.
func (g Glyph) Class(size string) string {
	size = strings.TrimSpace(size)
	if size == "" {
		return "iconify inline-block"
	}
	return fmt.Sprintf("iconify inline-block %s", size)
}

var table = map[string]Glyph{}

func register(key, name string) Glyph {
	g := Glyph{Key: key, Name: "lucide:" + name}
	table[key] = g
	return g
}

var (
	Target        = register("Target", "target")
	Eye           = register("Eye", "eye")
	Sparkles      = register("Sparkles", "sparkles")
	FileText      = register("FileText", "file-text")
	TrendingUp    = register("TrendingUp", "trending-up")
	Search        = register("Search", "search")
	CheckCircle2  = register("CheckCircle2", "check-circle-2")
	Zap           = register("Zap", "zap")
	Heart         = register("Heart", "heart")
	Users         = register("Users", "users")
	Star          = register("Star", "star")
	ImageIcon     = register("ImageIcon", "image")
	Palette       = register("Palette", "palette")
	Type          = register("Type", "type")
	Layers        = register("Layers", "layers")
	BookOpen      = register("BookOpen", "book-open")
	Video         = register("Video", "video")
	Settings      = register("Settings", "settings")
	Globe         = register("Globe", "globe")
	Leaf          = register("Leaf", "leaf")
	Truck         = register("Truck", "truck")
	Award         = register("Award", "award")
	Shield        = register("Shield", "shield-check")
	Monitor       = register("Monitor", "monitor")
	Cpu           = register("Cpu", "cpu")
	Box           = register("Box", "box")
	Mail          = register("Mail", "mail")
	Phone         = register("Phone", "phone")
	MapPin        = register("MapPin", "map-pin")
	Languages     = register("Languages", "languages")
	Bot           = register("Bot", "bot")
	Close         = register("X", "x")
	MessageCircle = register("MessageCircle", "message-circle")
)

// Default is returned for keys missing from the table.
var Default = Target

// Resolve looks up key, returning Default on a miss.
func Resolve(key string) Glyph {
	return ResolveOr(key, Default)
}

// ResolveOr looks up key, returning fallback on a miss. A zero fallback means Default.
func ResolveOr(key string, fallback Glyph) Glyph {
	if g, ok := table[strings.TrimSpace(key)]; ok {
		return g
	}
	if fallback.Name == "" {
		return Default
	}
	return fallback
}

// Known reports whether key has its own glyph.
func Known(key string) bool {
	_, ok := table[strings.TrimSpace(key)]
	return ok
}
