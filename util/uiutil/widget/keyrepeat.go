package widget

import (
	"time"

	"github.com/jmigpin/linefield/util/uiutil/event"
)

const (
	DefaultKeyRepeatDelay = 400 * time.Millisecond
	DefaultKeyRepeatRate  = 50 * time.Millisecond
)

// Auto repeat of one held key: first repeat after Delay, then every Rate.
type KeyRepeat struct {
	Delay time.Duration
	Rate  time.Duration

	key   event.KeySym
	armed bool
	held  time.Duration
}

func NewKeyRepeat() *KeyRepeat {
	return &KeyRepeat{Delay: DefaultKeyRepeatDelay, Rate: DefaultKeyRepeatRate}
}

func (kr *KeyRepeat) Arm(ks event.KeySym) {
	kr.key = ks
	kr.armed = true
	kr.held = 0
}

func (kr *KeyRepeat) Disarm() {
	kr.key = event.KSymNone
	kr.armed = false
	kr.held = 0
}

func (kr *KeyRepeat) Key() (event.KeySym, bool) {
	return kr.key, kr.armed
}

func (kr *KeyRepeat) Held() time.Duration {
	return kr.held
}

// Returns the armed key if it should repeat in this frame. At most one repeat per call; the surplus time is kept so the cadence does not drift.
func (kr *KeyRepeat) Update(down event.KeySymSet, dt time.Duration) (event.KeySym, bool) {
	if !kr.armed {
		return event.KSymNone, false
	}
	if !down.Has(kr.key) {
		kr.Disarm()
		return event.KSymNone, false
	}
	kr.held += dt
	if kr.held < kr.Delay {
		return event.KSymNone, false
	}
	if kr.Rate > 0 {
		kr.held -= kr.Rate
	}
	return kr.key, true
}
