package drawutil

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Sum of the glyph advances, kerning included. Runes the face doesn't know still advance by the face's fallback.
func MeasureString(face font.Face, s string) fixed.Int26_6 {
	w := fixed.Int26_6(0)
	prev := rune(-1)
	for _, ru := range s {
		if prev >= 0 {
			w += face.Kern(prev, ru)
		}
		adv, _ := face.GlyphAdvance(ru)
		w += adv
		prev = ru
	}
	return w
}
