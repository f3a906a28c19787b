package core

import (
	"time"

	"github.com/jmigpin/linefield/util/uiutil/widget"
)

type Options struct {
	Script string // replay script filename
	Out    string // png output filename, optional

	Font     string // truetype filename, empty for the default font
	FontSize float64
	DPI      float64

	// Monospace cell width in pixels; if >0 text is measured in terminal cells instead of glyph advances.
	Cells int

	RepeatDelay time.Duration
	RepeatRate  time.Duration

	Watch bool
}

func DefaultOptions() *Options {
	return &Options{
		FontSize:    12,
		DPI:         72,
		RepeatDelay: widget.DefaultKeyRepeatDelay,
		RepeatRate:  widget.DefaultKeyRepeatRate,
	}
}
