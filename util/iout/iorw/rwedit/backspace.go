package rwedit

func Backspace(ctx *Ctx) error {
	b := ctx.C.Index()
	_, size, err := ctx.RW.ReadLastRuneAt(b)
	if err != nil {
		return err
	}
	a := b - size
	if err := ctx.RW.Delete(a, b-a); err != nil {
		return err
	}
	ctx.C.SetIndex(a)
	return nil
}
