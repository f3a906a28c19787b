package rwedit

import (
	"fmt"
	"unicode/utf8"
)

func InsertString(ctx *Ctx, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("invalid utf8: %q", s)
	}
	ci := ctx.C.Index()
	if err := ctx.RW.Insert(ci, []byte(s)); err != nil {
		return err
	}
	ctx.C.SetIndex(ci + len(s))
	return nil
}

func InsertRune(ctx *Ctx, ru rune) error {
	if !utf8.ValidRune(ru) {
		return fmt.Errorf("invalid rune: %U", ru)
	}
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], ru)
	return InsertString(ctx, string(b[:n]))
}
