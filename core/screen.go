package core

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/jmigpin/linefield/util/drawutil"
	"github.com/jmigpin/linefield/util/imageutil"
	"github.com/jmigpin/linefield/util/uiutil/event"
	"github.com/jmigpin/linefield/util/uiutil/widget"
)

// Canvas with text fields. At most one field is focused.
type Screen struct {
	Img *image.RGBA
	Bg  color.Color

	fields []*ScreenField
	r      *drawutil.ImageRenderer
}

type ScreenField struct {
	Name string
	*widget.TextField
}

func NewScreen(size image.Point, bg color.Color) *Screen {
	img := image.NewRGBA(image.Rectangle{Max: size})
	return &Screen{Img: img, Bg: bg, r: drawutil.NewImageRenderer(img)}
}

// Renderer that paints into the screen image; fields can use it as their measurer.
func (s *Screen) Renderer() *drawutil.ImageRenderer {
	return s.r
}

func (s *Screen) AddField(name string, tf *widget.TextField) {
	s.fields = append(s.fields, &ScreenField{Name: name, TextField: tf})
}

func (s *Screen) Fields() []*ScreenField {
	return s.fields
}

func (s *Screen) Field(name string) (*widget.TextField, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f.TextField, true
		}
	}
	return nil, false
}

//----------

func (s *Screen) HandleInput(fr *event.Frame) {
	for _, f := range s.fields {
		was := f.Focused()
		f.HandleInput(fr)
		if f.Focused() && !was {
			s.Focus(f.TextField)
		}
	}
}

// Focuses tf and clears the focus of all the other fields.
func (s *Screen) Focus(tf *widget.TextField) {
	for _, f := range s.fields {
		if f.TextField != tf {
			f.SetFocused(false)
		}
	}
	tf.SetFocused(true)
}

func (s *Screen) Paint() {
	imageutil.FillRectangle(s.Img, s.Img.Bounds(), s.Bg)
	for _, f := range s.fields {
		f.Paint(s.r)
	}
}

//----------

// One line per field: `name: "text" cursor=N focused=B`.
func (s *Screen) Report() string {
	sb := &strings.Builder{}
	for _, f := range s.fields {
		fmt.Fprintf(sb, "%s: %q cursor=%d focused=%v\n", f.Name, f.Text(), f.CursorIndex(), f.Focused())
	}
	return sb.String()
}
