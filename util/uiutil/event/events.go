package event

import (
	"image"
	"time"
)

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
func (mb MouseButtons) HasAny(bs MouseButtons) bool {
	return int32(mb)&int32(bs) > 0
}
func (mb MouseButtons) Is(b MouseButton) bool {
	return int32(mb) == int32(b)
}

//----------

// Set of keys; nil is a valid empty set.
type KeySymSet map[KeySym]bool

func NewKeySymSet(kss ...KeySym) KeySymSet {
	s := KeySymSet{}
	for _, ks := range kss {
		s[ks] = true
	}
	return s
}

func (s KeySymSet) Has(ks KeySym) bool {
	return s[ks]
}

//----------

// Input gathered by the driver for one rendered frame.
type Frame struct {
	Point       image.Point  // pointer position
	Pressed     MouseButtons // buttons with a press edge in this frame
	KeysDown    KeySymSet    // keys currently held
	KeysPressed KeySymSet    // keys with a press edge in this frame
	Runes       []rune       // printable input, in typing order
	Dt          time.Duration
}
