package core

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/jmigpin/linefield/util/drawutil"
	"github.com/jmigpin/linefield/util/fontutil"
	"github.com/jmigpin/linefield/util/imageutil"
	"github.com/jmigpin/linefield/util/uiutil/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Runs the script file and returns the screen report. Writes the final screen to opt.Out if set.
func RunFile(opt *Options) (string, error) {
	b, err := os.ReadFile(opt.Script)
	if err != nil {
		return "", err
	}
	sc, err := ParseScript(b)
	if err != nil {
		return "", fmt.Errorf("%v: %w", opt.Script, err)
	}
	scr, err := RunScript(sc, opt)
	if err != nil {
		return "", fmt.Errorf("%v: %w", opt.Script, err)
	}
	if opt.Out != "" {
		if err := savePng(scr, opt.Out); err != nil {
			return "", err
		}
	}
	return scr.Report(), nil
}

// Builds the screen, feeds it all the frames and paints the final state.
func RunScript(sc *Script, opt *Options) (*Screen, error) {
	bg, err := sc.BackgroundColor()
	if err != nil {
		return nil, err
	}
	scr := NewScreen(sc.Size(), bg)

	tfont, err := loadFont(opt)
	if err != nil {
		return nil, err
	}

	var m widget.Measurer = scr.Renderer()
	cells := sc.Cells
	if opt.Cells > 0 {
		cells = opt.Cells
	}
	if cells > 0 {
		m = drawutil.NewCellMeasurer(cells)
	}

	for i, fs := range sc.Fields {
		tf, err := newField(fs, m, tfont, opt)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		scr.AddField(fs.Name, tf)
		if fs.Focused && tf.Enabled() {
			scr.Focus(tf)
		}
	}

	frames, err := sc.InputFrames()
	if err != nil {
		return nil, err
	}
	for _, fr := range frames {
		scr.HandleInput(fr)
	}
	scr.Paint()
	return scr, nil
}

//----------

func newField(fs *FieldSpec, m widget.Measurer, tfont fontutil.ThemeFont, opt *Options) (*widget.TextField, error) {
	r, err := fs.rect()
	if err != nil {
		return nil, err
	}
	size := opt.FontSize
	if fs.FontSize > 0 {
		size = fs.FontSize
	}
	tf := widget.NewTextField(m, r, size)
	tf.SetFont(tfont)
	tf.SetText(fs.Text)
	if fs.Cursor != nil {
		tf.SetCursorIndex(*fs.Cursor)
	} else {
		tf.SetCursorIndex(len(tf.Text()))
	}
	if fs.Prompt != nil {
		tf.SetPrompt(*fs.Prompt)
	}
	if fs.Enabled != nil {
		tf.SetEnabled(*fs.Enabled)
	}

	// key repeat
	delay, rate := opt.RepeatDelay, opt.RepeatRate
	if fs.RepeatDelay != "" {
		if delay, err = parseDuration(fs.RepeatDelay); err != nil {
			return nil, err
		}
	}
	if fs.RepeatRate != "" {
		if rate, err = parseDuration(fs.RepeatRate); err != nil {
			return nil, err
		}
	}
	tf.SetKeyRepeatSettings(delay, rate)

	// colors
	setters := []struct {
		s  string
		fn func(color.Color) *widget.TextField
	}{
		{fs.Colors.Text, tf.SetTextColor},
		{fs.Colors.Border, tf.SetBorderColor},
		{fs.Colors.Background, tf.SetBackgroundColor},
		{fs.Colors.Cursor, tf.SetCursorColor},
		{fs.Colors.Prompt, tf.SetPromptColor},
		{fs.Colors.Disabled, tf.SetDisabledColor},
	}
	for _, u := range setters {
		if u.s == "" {
			continue
		}
		c, err := imageutil.ParseColor(u.s)
		if err != nil {
			return nil, err
		}
		u.fn(c)
	}
	return tf, nil
}

func loadFont(opt *Options) (fontutil.ThemeFont, error) {
	topt := &truetype.Options{DPI: opt.DPI, Hinting: font.HintingFull}
	if opt.Font == "" {
		if opt.DPI == 0 || opt.DPI == 72 {
			return fontutil.DefaultThemeFont(), nil
		}
		tf, err := fontutil.NewTTThemeFont(goregular.TTF, topt)
		if err != nil {
			return nil, err
		}
		return tf, nil
	}
	tf, err := fontutil.LoadTTThemeFont(opt.Font, topt)
	if err != nil {
		return nil, err
	}
	return tf, nil
}

func savePng(scr *Screen, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, scr.Img); err != nil {
		return err
	}
	return f.Close()
}
