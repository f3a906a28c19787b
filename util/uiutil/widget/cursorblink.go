package widget

import "time"

const CursorBlinkInterval = 500 * time.Millisecond

type CursorBlink struct {
	visible bool
	elapsed time.Duration
}

func (cb *CursorBlink) Visible() bool {
	return cb.visible
}

// Restarts the cycle with the cursor shown.
func (cb *CursorBlink) Show() {
	cb.visible = true
	cb.elapsed = 0
}

func (cb *CursorBlink) Hide() {
	cb.visible = false
}

func (cb *CursorBlink) Update(dt time.Duration) {
	cb.elapsed += dt
	if cb.elapsed >= CursorBlinkInterval {
		cb.visible = !cb.visible
		cb.elapsed = 0
	}
}
