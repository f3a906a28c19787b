package fontutil

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Caches glyphs, advances and kerning. Safe only for the ui loop goroutine.
type FaceCache struct {
	font.Face
	gc  map[rune]*GlyphCache
	gac map[rune]*GlyphAdvanceCache
	kc  map[[2]rune]fixed.Int26_6 // kern cache
}

func NewFaceCache(face font.Face) *FaceCache {
	fc := &FaceCache{Face: face}
	fc.gc = make(map[rune]*GlyphCache)
	fc.gac = make(map[rune]*GlyphAdvanceCache)
	fc.kc = make(map[[2]rune]fixed.Int26_6)
	return fc
}
func (fc *FaceCache) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	gc, ok := fc.gc[ru]
	if !ok {
		gc = NewGlyphCache(fc.Face, ru)
		fc.gc[ru] = gc
	}
	p := image.Point{dot.X.Floor(), dot.Y.Floor()}
	dr2 := gc.dr.Add(p)
	return dr2, gc.mask, gc.maskp, gc.advance, gc.ok
}
func (fc *FaceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	gac, ok := fc.gac[ru]
	if !ok {
		adv, ok2 := fc.Face.GlyphAdvance(ru)
		gac = &GlyphAdvanceCache{adv, ok2}
		fc.gac[ru] = gac
	}
	return gac.advance, gac.ok
}
func (fc *FaceCache) Kern(r0, r1 rune) fixed.Int26_6 {
	i := [2]rune{r0, r1}
	k, ok := fc.kc[i]
	if !ok {
		k = fc.Face.Kern(r0, r1)
		fc.kc[i] = k
	}
	return k
}

//----------

type GlyphCache struct {
	dr      image.Rectangle
	mask    image.Image
	maskp   image.Point
	advance fixed.Int26_6
	ok      bool
}

func NewGlyphCache(face font.Face, ru rune) *GlyphCache {
	var zeroDot fixed.Point26_6 // always use zero
	dr, mask, maskp, adv, ok := face.Glyph(zeroDot, ru)

	// the truetype face reuses its mask buffer between calls
	if ok {
		mask = copyMask(mask)
	}

	return &GlyphCache{dr, mask, maskp, adv, ok}
}

//----------

type GlyphAdvanceCache struct {
	advance fixed.Int26_6
	ok      bool
}

//----------

func copyMask(mask image.Image) image.Image {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return mask
	}
	alpha2 := *alpha // copy structure
	pix := make([]uint8, len(alpha.Pix))
	copy(pix, alpha.Pix)
	alpha2.Pix = pix
	return &alpha2
}
