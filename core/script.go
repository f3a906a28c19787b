package core

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/jmigpin/linefield/util/imageutil"
	"github.com/jmigpin/linefield/util/uiutil/event"
	"gopkg.in/yaml.v3"
)

// Replay script: fields on a canvas and the input frames fed to them.
type Script struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Cells      int    `yaml:"cells"`

	Fields []*FieldSpec `yaml:"fields"`
	Frames []*FrameSpec `yaml:"frames"`
}

type FieldSpec struct {
	Name     string  `yaml:"name"`
	Rect     []int   `yaml:"rect"` // x0,y0,x1,y1
	FontSize float64 `yaml:"fontsize"`
	Text     string  `yaml:"text"`
	Cursor   *int    `yaml:"cursor"`
	Prompt   *string `yaml:"prompt"`
	Enabled  *bool   `yaml:"enabled"`
	Focused  bool    `yaml:"focused"`

	Colors struct {
		Text       string `yaml:"text"`
		Border     string `yaml:"border"`
		Background string `yaml:"background"`
		Cursor     string `yaml:"cursor"`
		Prompt     string `yaml:"prompt"`
		Disabled   string `yaml:"disabled"`
	} `yaml:"colors"`

	RepeatDelay string `yaml:"repeatdelay"`
	RepeatRate  string `yaml:"repeatrate"`
}

// One input frame. With repeat>1 the frame is fed repeat times: the press edges (pressed, press, type) only on the first, the held keys on all.
type FrameSpec struct {
	Dt      string   `yaml:"dt"`
	Point   []int    `yaml:"point"` // x,y
	Press   []string `yaml:"press"` // mouse buttons
	Down    []string `yaml:"down"`
	Pressed []string `yaml:"pressed"` // also down
	Type    string   `yaml:"type"`
	Repeat  int      `yaml:"repeat"`
}

//----------

func ParseScript(b []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	sc := &Script{}
	if err := dec.Decode(sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty script")
		}
		return nil, err
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Script) validate() error {
	if sc.Width < 0 || sc.Height < 0 {
		return fmt.Errorf("bad canvas size: %vx%v", sc.Width, sc.Height)
	}
	names := map[string]bool{}
	for i, f := range sc.Fields {
		if f.Name == "" {
			f.Name = fmt.Sprintf("field%d", i)
		}
		if names[f.Name] {
			return fmt.Errorf("field %d: duplicate name: %q", i, f.Name)
		}
		names[f.Name] = true
		if _, err := f.rect(); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}
	return nil
}

// Canvas size; defaults to enclosing all the fields.
func (sc *Script) Size() image.Point {
	size := image.Pt(sc.Width, sc.Height)
	if size.X > 0 && size.Y > 0 {
		return size
	}
	u := image.Rectangle{}
	for _, f := range sc.Fields {
		r, _ := f.rect()
		u = u.Union(r)
	}
	if size.X <= 0 {
		size.X = u.Max.X
	}
	if size.Y <= 0 {
		size.Y = u.Max.Y
	}
	return size
}

func (sc *Script) BackgroundColor() (color.Color, error) {
	if sc.Background == "" {
		return color.White, nil
	}
	return imageutil.ParseColor(sc.Background)
}

//----------

func (f *FieldSpec) rect() (image.Rectangle, error) {
	if len(f.Rect) != 4 {
		return image.Rectangle{}, fmt.Errorf("rect: expecting 4 values: %v", f.Rect)
	}
	r := image.Rect(f.Rect[0], f.Rect[1], f.Rect[2], f.Rect[3])
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("rect: empty: %v", r)
	}
	return r, nil
}

//----------

func (sc *Script) InputFrames() ([]*event.Frame, error) {
	frames := []*event.Frame{}
	for i, fs := range sc.Frames {
		frs, err := fs.frames()
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, frs...)
	}
	return frames, nil
}

func (fs *FrameSpec) frames() ([]*event.Frame, error) {
	dt, err := parseDuration(fs.Dt)
	if err != nil {
		return nil, err
	}

	fr := &event.Frame{Dt: dt}
	if fs.Point != nil {
		if len(fs.Point) != 2 {
			return nil, fmt.Errorf("point: expecting 2 values: %v", fs.Point)
		}
		fr.Point = image.Pt(fs.Point[0], fs.Point[1])
	}
	for _, s := range fs.Press {
		b, err := event.ParseMouseButton(s)
		if err != nil {
			return nil, err
		}
		fr.Pressed |= event.MouseButtons(b)
	}

	down, err := parseKeySyms(fs.Down)
	if err != nil {
		return nil, err
	}
	pressed, err := parseKeySyms(fs.Pressed)
	if err != nil {
		return nil, err
	}
	down = append(down, pressed...)
	fr.KeysDown = event.NewKeySymSet(down...)
	fr.KeysPressed = event.NewKeySymSet(pressed...)
	fr.Runes = []rune(fs.Type)

	n := fs.Repeat
	if n < 0 {
		return nil, fmt.Errorf("bad repeat: %v", n)
	}
	if n == 0 {
		n = 1
	}
	frames := []*event.Frame{fr}
	for i := 1; i < n; i++ {
		fr2 := &event.Frame{Point: fr.Point, KeysDown: fr.KeysDown, Dt: fr.Dt}
		frames = append(frames, fr2)
	}
	return frames, nil
}

//----------

func parseKeySyms(u []string) ([]event.KeySym, error) {
	w := []event.KeySym{}
	for _, s := range u {
		ks, err := event.ParseKeySym(s)
		if err != nil {
			return nil, err
		}
		w = append(w, ks)
	}
	return w, nil
}

// Empty is zero.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration: %v", s)
	}
	return d, nil
}
