package widget

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Default text field colors.
var (
	DefaultTextColor       color.Color = colornames.Black
	DefaultBorderColor     color.Color = colornames.Darkgray
	DefaultBackgroundColor color.Color = colornames.Lightgray
	DefaultCursorColor     color.Color = colornames.Black
	DefaultPromptColor     color.Color = colornames.Gray
	DefaultDisabledColor   color.Color = color.NRGBA{179, 179, 179, 128}

	// used for text and border when disabled
	DisabledFgColor color.Color = colornames.Gray
)
