package rwedit

func Delete(ctx *Ctx) error {
	a := ctx.C.Index()
	_, size, err := ctx.RW.ReadRuneAt(a)
	if err != nil {
		return err
	}
	return ctx.RW.Delete(a, size)
}
