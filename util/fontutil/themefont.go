package fontutil

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font reference: provides faces by size (points).
type ThemeFont interface {
	Face(size float64) font.Face
	Clear() // clears internal faces
}

//----------

// Truetype theme font.
type TTThemeFont struct {
	opt    truetype.Options // size is overriden per face
	ttfont *truetype.Font
	faces  map[truetype.Options]font.Face
}

func NewTTThemeFont(ttf []byte, opt *truetype.Options) (*TTThemeFont, error) {
	ttfont, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	tf := &TTThemeFont{ttfont: ttfont}
	if opt != nil {
		tf.opt = *opt
	}
	tf.Clear()
	return tf, nil
}

func LoadTTThemeFont(filename string, opt *truetype.Options) (*TTThemeFont, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	tf, err := NewTTThemeFont(b, opt)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return tf, nil
}

func (tf *TTThemeFont) Face(size float64) font.Face {
	opt2 := tf.opt
	opt2.Size = size
	face, ok := tf.faces[opt2]
	if !ok {
		face = NewFaceCache(NewFaceRunes(truetype.NewFace(tf.ttfont, &opt2)))
		tf.faces[opt2] = face
	}
	return face
}

func (tf *TTThemeFont) Clear() {
	for _, f := range tf.faces {
		_ = f.Close()
	}
	tf.faces = make(map[truetype.Options]font.Face)
}

//----------

var _dft ThemeFont

func DefaultThemeFont() ThemeFont {
	if _dft == nil {
		_dft = goregularThemeFont()
	}
	return _dft
}

func goregularThemeFont() *TTThemeFont {
	tf, err := NewTTThemeFont(goregular.TTF, nil)
	if err != nil {
		panic(err)
	}
	return tf
}
