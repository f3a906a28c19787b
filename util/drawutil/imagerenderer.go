package drawutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/linefield/util/fontutil"
	"github.com/jmigpin/linefield/util/imageutil"
	"golang.org/x/image/math/fixed"
)

// Renders into an image. Widths come from the font faces glyph advances.
type ImageRenderer struct {
	Img draw.Image
}

func NewImageRenderer(img draw.Image) *ImageRenderer {
	return &ImageRenderer{Img: img}
}

func (r *ImageRenderer) Measure(s string, f fontutil.ThemeFont, size float64) fixed.Int26_6 {
	return MeasureString(f.Face(size), s)
}

//----------

func (r *ImageRenderer) DrawText(s string, p image.Point, f fontutil.ThemeFont, size float64, c color.Color) {
	face := f.Face(size)
	b := r.Img.Bounds()
	pen := fixed.P(p.X, p.Y)
	prev := rune(-1)
	for _, ru := range s {
		if prev >= 0 {
			pen.X += face.Kern(prev, ru)
		}
		gr, mask, maskp, adv, ok := face.Glyph(pen, ru)
		if ok {
			// clip
			gr2 := gr.Intersect(b)
			maskp = maskp.Add(gr2.Min.Sub(gr.Min))
			if !gr2.Empty() {
				imageutil.DrawUniformMask(r.Img, gr2, c, mask, maskp, draw.Over)
			}
		}
		pen.X += adv
		prev = ru
	}
}

func (r *ImageRenderer) DrawRect(rect image.Rectangle, c color.Color) {
	imageutil.FillRectangle(r.Img, rect, c)
}

func (r *ImageRenderer) DrawRectOutline(rect image.Rectangle, thickness int, c color.Color) {
	imageutil.BorderRectangle(r.Img, rect, c, thickness)
}

// Only vertical lines are needed (cursor); other lines are drawn as their bounding box.
func (r *ImageRenderer) DrawLine(p0, p1 image.Point, thickness int, c color.Color) {
	if p0.X == p1.X {
		imageutil.VLine(r.Img, p0.X, p0.Y, p1.Y, thickness, c)
		return
	}
	rect := image.Rectangle{p0, p1}.Canon()
	rect.Max = rect.Max.Add(image.Pt(0, thickness))
	imageutil.FillRectangle(r.Img, rect, c)
}
