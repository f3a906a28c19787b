package rwedit

import (
	"errors"
	"image"
	"io"
	"testing"

	"github.com/jmigpin/linefield/util/iout/iorw"
	"github.com/jmigpin/linefield/util/uiutil/event"
)

func TestAll1(t *testing.T) {
	type state struct {
		s  string
		ci int // cursor index
	}
	type test struct {
		st  state
		est state // expected state
		f   func(*Ctx) error
		err error // expected error (errors.Is)
	}

	var testEntry func(*test)

	var testFns = []func(){
		func() {
			testEntry(&test{
				st:  state{s: "123", ci: 2},
				est: state{s: "13", ci: 1},
				f:   Backspace,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "caféx", ci: 5},
				est: state{s: "cafx", ci: 3},
				f:   Backspace,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "123", ci: 0},
				est: state{s: "123", ci: 0},
				f:   Backspace,
				err: io.EOF,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "01234", ci: 2},
				est: state{s: "0134", ci: 2},
				f:   Delete,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "a😀b", ci: 1},
				est: state{s: "ab", ci: 1},
				f:   Delete,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "012", ci: 3},
				est: state{s: "012", ci: 3},
				f:   Delete,
				err: io.EOF,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "aé", ci: 3},
				est: state{s: "aé", ci: 1},
				f:   MoveCursorLeft,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "aé", ci: 0},
				est: state{s: "aé", ci: 0},
				f:   MoveCursorLeft,
				err: io.EOF,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "😀a", ci: 0},
				est: state{s: "😀a", ci: 4},
				f:   MoveCursorRight,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "ab", ci: 2},
				est: state{s: "ab", ci: 2},
				f:   MoveCursorRight,
				err: io.EOF,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "cafe", ci: 4},
				est: state{s: "cafeé", ci: 6},
				f:   func(ctx *Ctx) error { return InsertRune(ctx, 'é') },
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "ac", ci: 1},
				est: state{s: "abbc", ci: 3},
				f:   func(ctx *Ctx) error { return InsertString(ctx, "bb") },
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "ab", ci: 1},
				est: state{s: "ab", ci: 1},
				f:   func(ctx *Ctx) error { return InsertRune(ctx, 0xd800) },
				err: errAny,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "é", ci: 1}, // mid rune
				est: state{s: "é", ci: 1},
				f:   func(ctx *Ctx) error { return InsertString(ctx, "x") },
				err: iorw.ErrBadIndex,
			})
		},
		func() {
			testEntry(&test{
				st:  state{s: "aé", ci: 0},
				est: state{s: "aé", ci: 1},
				f: func(ctx *Ctx) error {
					ctx.Fns.GetIndex = func(image.Point) int { return 2 } // mid rune
					MoveCursorToPoint(ctx, image.Point{})
					return nil
				},
			})
		},
	}

	testEntry = func(w *test) {
		t.Helper()

		// init
		ctx := NewCtx(iorw.NewStringRW(w.st.s))
		ctx.C.SetIndex(w.st.ci)

		// func error
		err := w.f(ctx)
		switch {
		case w.err == errAny:
			if err == nil {
				t.Fatal("expected error")
			}
		case w.err != nil:
			if !errors.Is(err, w.err) {
				t.Fatalf("expected error %v, got %v", w.err, err)
			}
		case err != nil:
			t.Fatal(err)
		}
		// state
		est := state{s: ctx.RW.String(), ci: ctx.C.Index()}
		if est != w.est {
			t.Fatalf("expected:\n%v\ngot:\n%v\n", w.est, est)
		}
	}

	// run tests
	for _, fn := range testFns {
		fn()
	}
}

var errAny = errors.New("any error")

//----------

func TestStepKey(t *testing.T) {
	ctx := NewCtx(iorw.NewStringRW("ab"))
	ctx.C.SetIndex(2)

	h, err := StepKey(ctx, event.KSymRight)
	if err != nil || h {
		t.Fatal(h, err)
	}
	h, err = StepKey(ctx, event.KSymLeft)
	if err != nil || !h || ctx.C.Index() != 1 {
		t.Fatal(h, err, ctx.C.Index())
	}
	h, err = StepKey(ctx, event.KSymDelete)
	if err != nil || !h || ctx.RW.String() != "a" {
		t.Fatal(h, err, ctx.RW.String())
	}
	h, err = StepKey(ctx, event.KSymBackspace)
	if err != nil || !h || ctx.RW.String() != "" || ctx.C.Index() != 0 {
		t.Fatal(h, err, ctx.RW.String())
	}
	h, err = StepKey(ctx, event.KSymReturn)
	if err != nil || h {
		t.Fatal(h, err)
	}
	if IsStepKey(event.KSymReturn) || !IsStepKey(event.KSymBackspace) {
		t.Fatal("step keys")
	}
}

func TestCursorOnChange(t *testing.T) {
	n := 0
	c := &Cursor{OnChange: func() { n++ }}
	c.SetIndex(0)
	c.SetIndex(3)
	c.SetIndex(3)
	if n != 1 {
		t.Fatal(n)
	}
}
