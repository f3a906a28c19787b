package core

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmigpin/linefield/util/testutil"
	"github.com/jmigpin/linefield/util/uiutil/event"
	"github.com/jmigpin/linefield/util/uiutil/widget"
)

func TestReplay(t *testing.T) {
	filename := "testdata/replay.txt"
	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	ar := testutil.ParseTxtar(b, filename)
	testutil.RunArchive2(t, ar, func(t2 *testing.T, name string, in, out []byte) error {
		sc, err := ParseScript(in)
		if err != nil {
			return err
		}
		scr, err := RunScript(sc, DefaultOptions())
		if err != nil {
			return err
		}
		res := testutil.TrimLineSpaces(scr.Report())
		expect := testutil.TrimLineSpaces(string(out))
		if res != expect {
			return fmt.Errorf("\n-- result --\n%v\n-- expected --\n%v", res, expect)
		}
		return nil
	})
}

//----------

func TestParseScriptErrors(t *testing.T) {
	type test struct {
		src string
		err string
	}
	tests := []test{
		{"", "empty script"},
		{"fields: [{rect: [0,0,10]}]", "field 0: rect"},
		{"fields: [{rect: [0,0,0,10]}]", "empty"},
		{"fields: [{name: a, rect: [0,0,10,10]}, {name: a, rect: [0,0,10,10]}]", "duplicate"},
		{"unknownkey: 1", "not found"},
		{"width: -1", "canvas"},
	}
	for _, w := range tests {
		_, err := ParseScript([]byte(w.src))
		if err == nil || !strings.Contains(err.Error(), w.err) {
			t.Fatalf("%q: expected %q, got %v", w.src, w.err, err)
		}
	}
}

func TestInputFramesErrors(t *testing.T) {
	srcs := []string{
		"frames: [{pressed: [nokey]}]",
		"frames: [{press: [nobutton]}]",
		"frames: [{dt: 10}]",
		"frames: [{dt: -1s}]",
		"frames: [{point: [1]}]",
		"frames: [{repeat: -1}]",
	}
	for _, src := range srcs {
		sc, err := ParseScript([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := sc.InputFrames(); err == nil || !strings.HasPrefix(err.Error(), "frame 0:") {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestInputFramesRepeat(t *testing.T) {
	src := `
frames:
  - point: [3, 4]
    press: [left]
    pressed: [delete]
    down: [shiftl]
    type: ab
    dt: 10ms
    repeat: 3
`
	sc, err := ParseScript([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	frames, err := sc.InputFrames()
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatal(len(frames))
	}
	f0 := frames[0]
	if !f0.Pressed.Has(event.ButtonLeft) || !f0.KeysPressed.Has(event.KSymDelete) || string(f0.Runes) != "ab" {
		t.Fatal(f0)
	}
	for _, fr := range frames {
		if fr.Point != image.Pt(3, 4) || fr.Dt != 10*time.Millisecond ||
			!fr.KeysDown.Has(event.KSymDelete) || !fr.KeysDown.Has(event.KSymShiftL) {
			t.Fatal(fr)
		}
	}
	for _, fr := range frames[1:] {
		if fr.Pressed != 0 || len(fr.KeysPressed) != 0 || len(fr.Runes) != 0 {
			t.Fatal(fr)
		}
	}
}

func TestScriptSize(t *testing.T) {
	sc, err := ParseScript([]byte("fields: [{rect: [10,10,50,30]}, {rect: [0,40,30,60]}]"))
	if err != nil {
		t.Fatal(err)
	}
	if s := sc.Size(); s != image.Pt(50, 60) {
		t.Fatal(s)
	}
	if sc.Fields[1].Name != "field1" {
		t.Fatal(sc.Fields[1].Name)
	}
}

//----------

func TestScreenFocus(t *testing.T) {
	scr := NewScreen(image.Pt(100, 100), color.White)
	a := widget.NewTextField(scr.Renderer(), image.Rect(0, 0, 100, 40), 12)
	b := widget.NewTextField(scr.Renderer(), image.Rect(0, 20, 100, 60), 12) // overlaps a
	scr.AddField("a", a)
	scr.AddField("b", b)

	scr.HandleInput(&event.Frame{Point: image.Pt(10, 30), Pressed: event.MouseButtons(event.ButtonLeft)})
	if a.Focused() || !b.Focused() {
		t.Fatal(a.Focused(), b.Focused())
	}
	scr.Focus(a)
	if !a.Focused() || b.Focused() {
		t.Fatal(a.Focused(), b.Focused())
	}
	if tf, ok := scr.Field("b"); !ok || tf != b {
		t.Fatal("field b")
	}
	if _, ok := scr.Field("c"); ok {
		t.Fatal("field c")
	}
}

func TestScreenPaint(t *testing.T) {
	src := `
width: 120
height: 80
background: "#ffffff"
fields:
  - name: a
    rect: [10, 10, 110, 35]
    fontsize: 14
    text: hello
    focused: true
    colors: {background: 0x00ff00, border: "#0000ff"}
  - name: b
    rect: [10, 45, 110, 70]
    enabled: false
`
	sc, err := ParseScript([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	scr, err := RunScript(sc, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	img := scr.Img

	green := color.RGBA{0, 255, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	if img.RGBAAt(11, 11) != blue || img.RGBAAt(108, 33) != blue {
		t.Fatal("border")
	}
	if img.RGBAAt(100, 14) != green {
		t.Fatal("background", img.RGBAAt(100, 14))
	}
	// text and cursor
	if n := testutil.CountNotColor(img, image.Rect(12, 12, 108, 33), green); n == 0 {
		t.Fatal("no text")
	}
	// outside the fields
	if n := testutil.CountNotColor(img, image.Rect(0, 0, 120, 10), color.White); n != 0 {
		t.Fatal(n)
	}

	// deterministic
	scr2, err := RunScript(sc, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := testutil.CompareImgs(img, scr2.Img); err != nil {
		t.Fatal(err)
	}
}

//----------

func writeScript(t *testing.T, filename, text string) {
	t.Helper()
	src := fmt.Sprintf("cells: 10\nfields: [{name: f, rect: [0,0,100,20], text: %q}]\n", text)
	if err := os.WriteFile(filename, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	opt := DefaultOptions()
	opt.Script = filepath.Join(dir, "s.yaml")
	opt.Out = filepath.Join(dir, "s.png")
	writeScript(t, opt.Script, "abc")

	rep, err := RunFile(opt)
	if err != nil {
		t.Fatal(err)
	}
	if rep != "f: \"abc\" cursor=3 focused=false\n" {
		t.Fatal(rep)
	}
	b, err := os.ReadFile(opt.Out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := testutil.DecodePng(b)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 100, 20) {
		t.Fatal(img.Bounds())
	}

	opt.Script = filepath.Join(dir, "missing.yaml")
	if _, err := RunFile(opt); err == nil {
		t.Fatal("expected error")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	opt := DefaultOptions()
	opt.Script = filepath.Join(dir, "s.yaml")
	writeScript(t, opt.Script, "one")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reports := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, opt, func(rep string, err error) {
			if err != nil {
				rep = err.Error()
			}
			reports <- rep
		})
	}()

	next := func() string {
		t.Helper()
		select {
		case rep := <-reports:
			return rep
		case <-ctx.Done():
			t.Fatal("timeout")
		}
		return ""
	}

	if rep := next(); !strings.Contains(rep, `"one"`) {
		t.Fatal(rep)
	}
	writeScript(t, opt.Script, "two")
	for {
		// a write can produce more than one event
		if rep := next(); strings.Contains(rep, `"two"`) {
			break
		}
	}
	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatal(err)
	}
}
