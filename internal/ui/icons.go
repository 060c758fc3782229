package ui

// glyphs maps symbolic icon names to terminal glyphs. Size hints from the
// web build have no terminal equivalent and are dropped.
var glyphs = map[string]string{
	"Home":    "⌂",
	"Youtube": "▶",
	"Music":   "♪",
	"Heart":   "♥",
	"HeartO":  "♡",
	"User":    "☺",
	"Eye":     "◉",
	"Play":    "▶",
	"Pause":   "❚❚",
	"Prev":    "◀◀",
	"Next":    "▶▶",
	"Search":  "⌕",
	"Bell":    "♫",
}

// icon returns the glyph for name, or "?" for unknown names.
func icon(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "?"
}
