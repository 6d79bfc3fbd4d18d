package render

import "strings"

const fillGlyph = "#"

// Bar renders a usage fraction as a fixed-width ASCII bar: filled glyphs
// followed by spaces, always exactly length characters. Fractions outside
// [0, 1] are clamped so inconsistent accounting data cannot break column
// alignment.
func Bar(fraction float64, length int) string {
	if length <= 0 {
		return ""
	}

	filled := int(fraction * float64(length))
	if filled < 0 {
		filled = 0
	} else if filled > length {
		filled = length
	}

	return strings.Repeat(fillGlyph, filled) + strings.Repeat(" ", length-filled)
}
