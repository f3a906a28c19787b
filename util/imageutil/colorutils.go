package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Accepts "#rrggbb", "0xrrggbb" or "#rrggbbaa" (non-premultiplied alpha).
func ParseColor(s string) (color.Color, error) {
	s2 := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	u, err := strconv.ParseUint(s2, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color: %q", s)
	}
	switch len(s2) {
	case 6:
		return RgbaFromInt(int(u)), nil
	case 8:
		c := RgbaFromInt(int(u >> 8))
		nc := color.NRGBA{c.R, c.G, c.B, uint8(u & 0xff)}
		return nc, nil
	}
	return nil, fmt.Errorf("bad color: %q", s)
}
