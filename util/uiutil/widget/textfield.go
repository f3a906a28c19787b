package widget

import (
	"image"
	"image/color"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jmigpin/linefield/util/fontutil"
	"github.com/jmigpin/linefield/util/iout/iorw"
	"github.com/jmigpin/linefield/util/iout/iorw/rwedit"
	"github.com/jmigpin/linefield/util/uiutil/event"
	"golang.org/x/image/math/fixed"
)

const (
	TextFieldPadding      = 5 // text start, from the left edge
	TextFieldBorderSize   = 2
	TextFieldCursorOffset = 2 // cursor line gap after the text
)

// Single line text field. Owns the text buffer and cursor (byte index, always on a rune boundary). Not safe for concurrent use: it is driven by the ui loop, one HandleInput call per frame.
type TextField struct {
	KeyRepeat   KeyRepeat
	CursorBlink CursorBlink

	// Called on internal edit errors (should not happen, the field never surfaces errors).
	OnError func(error)

	bounds   image.Rectangle
	ctx      *rwedit.Ctx
	measurer Measurer

	focused bool
	enabled bool

	font     fontutil.ThemeFont
	fontSize float64

	prompt struct {
		on  bool
		str string
	}

	colors struct {
		text, border, bg, cursor, prompt, disabled color.Color
	}
}

func NewTextField(m Measurer, r image.Rectangle, fontSize float64) *TextField {
	tf := &TextField{
		KeyRepeat: *NewKeyRepeat(),
		bounds:    r,
		measurer:  m,
		enabled:   true,
		fontSize:  fontSize,
	}
	tf.ctx = rwedit.NewCtx(iorw.NewRW(nil))
	tf.ctx.Fns.GetIndex = func(p image.Point) int {
		return tf.HitTest(p.X)
	}

	tf.colors.text = DefaultTextColor
	tf.colors.border = DefaultBorderColor
	tf.colors.bg = DefaultBackgroundColor
	tf.colors.cursor = DefaultCursorColor
	tf.colors.prompt = DefaultPromptColor
	tf.colors.disabled = DefaultDisabledColor
	return tf
}

//----------

func (tf *TextField) HandleInput(fr *event.Frame) {
	dt := fr.Dt
	if dt < 0 {
		dt = 0
	}

	if !tf.enabled {
		tf.focused = false
		tf.CursorBlink.Hide()
		tf.KeyRepeat.Disarm()
		return
	}

	if fr.Pressed.Has(event.ButtonLeft) {
		in := tf.contains(fr.Point)
		tf.SetFocused(in)
		if in {
			rwedit.MoveCursorToPoint(tf.ctx, fr.Point)
		}
	}

	if !tf.focused {
		tf.CursorBlink.Hide()
		return
	}

	for _, ru := range fr.Runes {
		if unicode.IsControl(ru) || !utf8.ValidRune(ru) {
			continue
		}
		tf.report(rwedit.InsertRune(tf.ctx, ru))
	}

	// only the first applicable press edge is handled
	for _, ks := range rwedit.StepKeySyms {
		if !fr.KeysPressed.Has(ks) {
			continue
		}
		h, err := rwedit.StepKey(tf.ctx, ks)
		tf.report(err)
		if h {
			tf.KeyRepeat.Arm(ks)
			break
		}
	}

	if ks, ok := tf.KeyRepeat.Update(fr.KeysDown, dt); ok {
		_, err := rwedit.StepKey(tf.ctx, ks)
		tf.report(err)
	}

	tf.CursorBlink.Update(dt)
}

// Edges are inclusive.
func (tf *TextField) contains(p image.Point) bool {
	b := tf.bounds
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (tf *TextField) report(err error) {
	if err != nil && tf.OnError != nil {
		tf.OnError(err)
	}
}

//----------

// Maps a pointer x position to the nearest rune boundary in the text.
func (tf *TextField) HitTest(x int) int {
	localX := fixed.I(x - (tf.bounds.Min.X + TextFieldPadding))
	res := tf.ctx.RW.Len()
	tf.walkRunes(func(i, size int, acc, w fixed.Int26_6) bool {
		if acc+w/2 > localX {
			res = i
			return false
		}
		return true
	})
	return res
}

// Width of the text before index i, summed rune by rune as in HitTest.
func (tf *TextField) offsetX(i int) fixed.Int26_6 {
	x := fixed.Int26_6(0)
	tf.walkRunes(func(k, size int, acc, w fixed.Int26_6) bool {
		if k >= i {
			return false
		}
		x = acc + w
		return true
	})
	return x
}

// acc is the accumulated width before the rune at i.
func (tf *TextField) walkRunes(fn func(i, size int, acc, w fixed.Int26_6) bool) {
	b := tf.ctx.RW.Bytes()
	f := tf.themeFont()
	acc := fixed.Int26_6(0)
	tf.ctx.RW.Iter(func(i int, ru rune, size int) bool {
		w := tf.measurer.Measure(string(b[i:i+size]), f, tf.fontSize)
		if !fn(i, size, acc, w) {
			return false
		}
		acc += w
		return true
	})
}

//----------

// Draws in order: background, prompt or text, cursor, border.
func (tf *TextField) Paint(r Renderer) {
	b := tf.bounds
	f := tf.themeFont()
	textX := b.Min.X + TextFieldPadding
	baseline := b.Min.Y + b.Dy()/2 + int(tf.fontSize/2.5)

	bg := tf.colors.bg
	fg, pfg, border := tf.colors.text, tf.colors.prompt, tf.colors.border
	if !tf.enabled {
		bg = tf.colors.disabled
		fg, pfg, border = DisabledFgColor, DisabledFgColor, DisabledFgColor
	}

	r.DrawRect(b, bg)

	p := image.Pt(textX, baseline)
	if tf.ctx.RW.Len() == 0 {
		if tf.prompt.on {
			r.DrawText(tf.prompt.str, p, f, tf.fontSize, pfg)
		}
	} else {
		r.DrawText(tf.ctx.RW.String(), p, f, tf.fontSize, fg)
	}

	if tf.enabled && tf.focused && tf.CursorBlink.Visible() {
		x := textX + tf.offsetX(tf.ctx.C.Index()).Round() + TextFieldCursorOffset
		p0 := image.Pt(x, baseline-int(tf.fontSize*0.7))
		p1 := image.Pt(x, baseline+2)
		r.DrawLine(p0, p1, 1, tf.colors.cursor)
	}

	r.DrawRectOutline(b, TextFieldBorderSize, border)
}

//----------

func (tf *TextField) Text() string {
	return tf.ctx.RW.String()
}

// Invalid utf8 is replaced with U+FFFD. The cursor is clamped to the new text.
func (tf *TextField) SetText(s string) *TextField {
	s = strings.ToValidUTF8(s, string(unicode.ReplacementChar))
	tf.ctx.RW.SetBytes([]byte(s))
	tf.ctx.C.SetIndex(tf.ctx.RW.AlignIndex(tf.ctx.C.Index()))
	return tf
}

func (tf *TextField) CursorIndex() int {
	return tf.ctx.C.Index()
}

// Out of range indexes are ignored. An index inside a rune moves to the rune start.
func (tf *TextField) SetCursorIndex(i int) *TextField {
	if i < 0 || i > tf.ctx.RW.Len() {
		return tf
	}
	tf.ctx.C.SetIndex(tf.ctx.RW.AlignIndex(i))
	return tf
}

func (tf *TextField) SetOnCursorChange(fn func()) *TextField {
	tf.ctx.C.OnChange = fn
	return tf
}

//----------

func (tf *TextField) Focused() bool {
	return tf.focused
}

// Gaining focus restarts the cursor blink; losing it stops the key repeat.
func (tf *TextField) SetFocused(v bool) *TextField {
	if v && !tf.enabled {
		return tf
	}
	if v && !tf.focused {
		tf.CursorBlink.Show()
	}
	if !v {
		tf.KeyRepeat.Disarm()
		tf.CursorBlink.Hide()
	}
	tf.focused = v
	return tf
}

func (tf *TextField) Enabled() bool {
	return tf.enabled
}

// Disabling clears focus and the key repeat state; text and cursor are kept.
func (tf *TextField) SetEnabled(v bool) *TextField {
	tf.enabled = v
	if !v {
		tf.SetFocused(false)
	}
	return tf
}

func (tf *TextField) CursorVisible() bool {
	return tf.CursorBlink.Visible()
}

//----------

func (tf *TextField) Bounds() image.Rectangle {
	return tf.bounds
}
func (tf *TextField) SetBounds(r image.Rectangle) *TextField {
	tf.bounds = r
	return tf
}

func (tf *TextField) Position() image.Point {
	return tf.bounds.Min
}
func (tf *TextField) SetPosition(p image.Point) *TextField {
	tf.bounds = tf.bounds.Add(p.Sub(tf.bounds.Min))
	return tf
}

func (tf *TextField) Dimensions() image.Point {
	return tf.bounds.Size()
}
func (tf *TextField) SetDimensions(size image.Point) *TextField {
	tf.bounds.Max = tf.bounds.Min.Add(size)
	return tf
}

//----------

// Nil if the default font is being used.
func (tf *TextField) Font() fontutil.ThemeFont {
	return tf.font
}
func (tf *TextField) SetFont(f fontutil.ThemeFont) *TextField {
	tf.font = f
	return tf
}
func (tf *TextField) themeFont() fontutil.ThemeFont {
	if tf.font != nil {
		return tf.font
	}
	return fontutil.DefaultThemeFont()
}

func (tf *TextField) FontSize() float64 {
	return tf.fontSize
}
func (tf *TextField) SetFontSize(size float64) *TextField {
	tf.fontSize = size
	return tf
}

//----------

func (tf *TextField) Prompt() (string, bool) {
	return tf.prompt.str, tf.prompt.on
}
func (tf *TextField) SetPrompt(s string) *TextField {
	tf.prompt.on = true
	tf.prompt.str = s
	return tf
}
func (tf *TextField) ClearPrompt() *TextField {
	tf.prompt.on = false
	tf.prompt.str = ""
	return tf
}

//----------

func (tf *TextField) SetColors(text, border, bg, cursor color.Color) *TextField {
	tf.colors.text = text
	tf.colors.border = border
	tf.colors.bg = bg
	tf.colors.cursor = cursor
	return tf
}

func (tf *TextField) TextColor() color.Color { return tf.colors.text }
func (tf *TextField) SetTextColor(c color.Color) *TextField {
	tf.colors.text = c
	return tf
}

func (tf *TextField) BorderColor() color.Color { return tf.colors.border }
func (tf *TextField) SetBorderColor(c color.Color) *TextField {
	tf.colors.border = c
	return tf
}

func (tf *TextField) BackgroundColor() color.Color { return tf.colors.bg }
func (tf *TextField) SetBackgroundColor(c color.Color) *TextField {
	tf.colors.bg = c
	return tf
}

func (tf *TextField) CursorColor() color.Color { return tf.colors.cursor }
func (tf *TextField) SetCursorColor(c color.Color) *TextField {
	tf.colors.cursor = c
	return tf
}

func (tf *TextField) PromptColor() color.Color { return tf.colors.prompt }
func (tf *TextField) SetPromptColor(c color.Color) *TextField {
	tf.colors.prompt = c
	return tf
}

func (tf *TextField) DisabledColor() color.Color { return tf.colors.disabled }
func (tf *TextField) SetDisabledColor(c color.Color) *TextField {
	tf.colors.disabled = c
	return tf
}

//----------

func (tf *TextField) KeyRepeatDelay() time.Duration {
	return tf.KeyRepeat.Delay
}
func (tf *TextField) SetKeyRepeatDelay(d time.Duration) *TextField {
	tf.KeyRepeat.Delay = d
	return tf
}

func (tf *TextField) KeyRepeatRate() time.Duration {
	return tf.KeyRepeat.Rate
}
func (tf *TextField) SetKeyRepeatRate(d time.Duration) *TextField {
	tf.KeyRepeat.Rate = d
	return tf
}

func (tf *TextField) SetKeyRepeatSettings(delay, rate time.Duration) *TextField {
	tf.KeyRepeat.Delay = delay
	tf.KeyRepeat.Rate = rate
	return tf
}
