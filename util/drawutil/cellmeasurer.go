package drawutil

import (
	"github.com/jmigpin/linefield/util/fontutil"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/math/fixed"
)

// Monospace measurer: each rune takes its terminal cell count (0, 1 or 2) times CellWidth. The font and size are ignored.
type CellMeasurer struct {
	CellWidth fixed.Int26_6
}

func NewCellMeasurer(cellWidth int) *CellMeasurer {
	return &CellMeasurer{CellWidth: fixed.I(cellWidth)}
}

func (cm *CellMeasurer) Measure(s string, f fontutil.ThemeFont, size float64) fixed.Int26_6 {
	return fixed.Int26_6(runewidth.StringWidth(s)) * cm.CellWidth
}
