package rwedit

import (
	"image"
)

func MoveCursorToPoint(ctx *Ctx, p image.Point) {
	i := ctx.Fns.GetIndex(p)
	ctx.C.SetIndex(ctx.RW.AlignIndex(i))
}

//----------

func MoveCursorLeft(ctx *Ctx) error {
	ci := ctx.C.Index()
	_, size, err := ctx.RW.ReadLastRuneAt(ci)
	if err != nil {
		return err
	}
	ctx.C.SetIndex(ci - size)
	return nil
}

func MoveCursorRight(ctx *Ctx) error {
	ci := ctx.C.Index()
	_, size, err := ctx.RW.ReadRuneAt(ci)
	if err != nil {
		return err
	}
	ctx.C.SetIndex(ci + size)
	return nil
}
