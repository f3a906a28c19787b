package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/linefield/util/fontutil"
	"golang.org/x/image/math/fixed"
)

// Must be deterministic for the same arguments: hit-testing and cursor painting both depend on it.
type Measurer interface {
	Measure(s string, f fontutil.ThemeFont, size float64) fixed.Int26_6
}

type Renderer interface {
	Measurer
	// p is the left end of the baseline
	DrawText(s string, p image.Point, f fontutil.ThemeFont, size float64, c color.Color)
	DrawRect(r image.Rectangle, c color.Color)
	DrawRectOutline(r image.Rectangle, thickness int, c color.Color)
	DrawLine(p0, p1 image.Point, thickness int, c color.Color)
}
