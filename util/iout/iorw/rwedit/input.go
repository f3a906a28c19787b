package rwedit

import (
	"errors"
	"io"

	"github.com/jmigpin/linefield/util/uiutil/event"
)

// Keys with a single step edit, in press precedence order.
var StepKeySyms = []event.KeySym{
	event.KSymDelete,
	event.KSymBackspace,
	event.KSymLeft,
	event.KSymRight,
}

func IsStepKey(ks event.KeySym) bool {
	for _, k := range StepKeySyms {
		if k == ks {
			return true
		}
	}
	return false
}

// Applies the single step edit bound to the key. Not handled if the key has no step, or if the step is a no-op at the cursor (buffer edge).
func StepKey(ctx *Ctx, ks event.KeySym) (event.Handle, error) {
	var err error
	switch ks {
	case event.KSymDelete:
		err = Delete(ctx)
	case event.KSymBackspace:
		err = Backspace(ctx)
	case event.KSymLeft:
		err = MoveCursorLeft(ctx)
	case event.KSymRight:
		err = MoveCursorRight(ctx)
	default:
		return event.NotHandled, nil
	}
	if errors.Is(err, io.EOF) {
		return event.NotHandled, nil
	}
	if err != nil {
		return event.NotHandled, err
	}
	return event.Handled, nil
}
