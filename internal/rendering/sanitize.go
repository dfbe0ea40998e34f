// Package rendering lays out scores and narrative content into the paginated
// Reflection Report PDF and the inline preview chart.
package rendering

import "strings"

// substitutions maps common typographic characters to ASCII equivalents the
// core PDF fonts can carry.
var substitutions = map[rune]string{
	'—': "-",   // em dash
	'–': "-",   // en dash
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'…': "...", // ellipsis
	'•': "-",   // bullet glyph
	' ': " ",   // non-breaking space
	'→': "->",  // right arrow
}

// Sanitize substitutes typographic characters with ASCII equivalents and drops
// anything left outside Latin-1, so layout never fails on exotic input.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		if sub, ok := substitutions[r]; ok {
			result.WriteString(sub)
			continue
		}
		if r <= 0xFF {
			result.WriteRune(r)
		}
		// anything else is dropped rather than erroring
	}

	return result.String()
}
