// Package icons expands {icon:name} placeholders in rendered slides.
package icons

import (
	"regexp"
	"sort"
)

var placeholder = regexp.MustCompile(`\{icon:([a-z0-9-]+)\}`)

var glyphs = map[string]string{
	"arrow-right": "→",
	"arrow-up":    "↑",
	"brain":       "🧠",
	"building":    "🏢",
	"chart":       "📈",
	"check":       "✓",
	"clock":       "⏱",
	"cross":       "✗",
	"dollar":      "$",
	"globe":       "🌐",
	"lightbulb":   "💡",
	"lock":        "🔒",
	"rocket":      "🚀",
	"shield":      "🛡",
	"star":        "★",
	"target":      "🎯",
	"users":       "👥",
	"warning":     "⚠",
	"zap":         "⚡",
}

// Expand replaces every known placeholder with its glyph. Unknown names
// are left untouched.
func Expand(s string) string {
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if g, ok := glyphs[name]; ok {
			return g
		}
		return m
	})
}

// Names lists the known icon names
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for n := range glyphs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
