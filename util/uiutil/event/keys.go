package event

import (
	"fmt"
	"strings"
)

type KeySym int

const (
	KSymNone KeySym = 0

	// let ascii codes keep their values
	KSym_dummy_ KeySym = 256 + iota

	KSymSpace

	KSymBackspace
	KSymReturn
	KSymEscape
	KSymHome
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymEnd
	KSymInsert
	KSymDelete
	KSymTab

	KSymShiftL
	KSymShiftR
	KSymControlL
	KSymControlR
	KSymAltL
	KSymAltR
)

var keySymNames = map[KeySym]string{
	KSymSpace:     "space",
	KSymBackspace: "backspace",
	KSymReturn:    "return",
	KSymEscape:    "escape",
	KSymHome:      "home",
	KSymLeft:      "left",
	KSymUp:        "up",
	KSymRight:     "right",
	KSymDown:      "down",
	KSymPageUp:    "pageup",
	KSymPageDown:  "pagedown",
	KSymEnd:       "end",
	KSymInsert:    "insert",
	KSymDelete:    "delete",
	KSymTab:       "tab",
	KSymShiftL:    "shiftl",
	KSymShiftR:    "shiftr",
	KSymControlL:  "controll",
	KSymControlR:  "controlr",
	KSymAltL:      "altl",
	KSymAltR:      "altr",
}

func (ks KeySym) String() string {
	if s, ok := keySymNames[ks]; ok {
		return s
	}
	if ks > 0 && ks < 256 {
		return string(rune(ks))
	}
	return fmt.Sprintf("keysym(%d)", int(ks))
}

// Accepts the names used by String(), case insensitive. Single ascii characters map to their own code.
func ParseKeySym(s string) (KeySym, error) {
	s2 := strings.ToLower(s)
	for ks, name := range keySymNames {
		if name == s2 {
			return ks, nil
		}
	}
	if len(s) == 1 && s[0] > ' ' && s[0] < 127 {
		return KeySym(s[0]), nil
	}
	return KSymNone, fmt.Errorf("unknown keysym: %q", s)
}

//----------

func (mb MouseButton) String() string {
	switch mb {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheelup"
	case ButtonWheelDown:
		return "wheeldown"
	}
	return "none"
}

func ParseMouseButton(s string) (MouseButton, error) {
	for _, mb := range []MouseButton{ButtonLeft, ButtonMiddle, ButtonRight, ButtonWheelUp, ButtonWheelDown} {
		if mb.String() == strings.ToLower(s) {
			return mb, nil
		}
	}
	return ButtonNone, fmt.Errorf("unknown mouse button: %q", s)
}
