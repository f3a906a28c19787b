package rwedit

import (
	"image"

	"github.com/jmigpin/linefield/util/iout/iorw"
)

type Ctx struct {
	RW  *iorw.RW
	C   *Cursor
	Fns CtxFns
}

func NewCtx(rw *iorw.RW) *Ctx {
	ctx := &Ctx{RW: rw, C: &Cursor{}, Fns: EmptyCtxFns()}
	return ctx
}

//----------

type CtxFns struct {
	GetIndex func(image.Point) int
}

func EmptyCtxFns() CtxFns {
	u := CtxFns{}
	u.GetIndex = func(image.Point) int { return 0 }
	return u
}
